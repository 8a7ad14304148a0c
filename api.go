package md5ext

import (
	"github.com/zeebo/md5ext/internal/consts"
)

// Hasher is a hash.Hash for MD5.
type Hasher struct {
	b buffered
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{
		b: buffered{
			h: newHasher(),
		},
	}
}

// NewResumed returns a Hasher that continues from d as if the n padded bytes
// that produced it had already been written. n must be a multiple of 64. Sum
// then yields the digest of the unknown original message, its padding and
// everything written since.
func NewResumed(d Digest, n uint64) (*Hasher, error) {
	e, err := ResumeEngine(d.State(), n)
	if err != nil {
		return nil, err
	}
	return &Hasher{b: buffered{h: e.h}}, nil
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.b.write(p)
	return len(p), nil
}

// WriteString is like Write but takes a string.
func (h *Hasher) WriteString(p string) (int, error) {
	h.b.write([]byte(p))
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.b.reset()
}

// Clone returns a new Hasher with the same state as this one.
func (h *Hasher) Clone() *Hasher {
	cloned := *h
	return &cloned
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return consts.Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return consts.BlockLen
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.b.finalize()
	return append(b, d[:]...)
}

// Digest returns the digest of everything written so far.
func (h *Hasher) Digest() Digest {
	return h.b.finalize()
}

// Len returns the number of bytes the hasher accounts for, including a
// resumed prefix.
func (h *Hasher) Len() uint64 {
	return h.b.h.len + uint64(h.b.n)
}

// Sum128 returns the MD5 digest of the data.
func Sum128(data []byte) (sum [16]byte) {
	b := buffered{h: newHasher()}
	b.write(data)
	return b.finalize()
}
