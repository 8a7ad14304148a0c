package md5ext

import (
	"github.com/zeebo/md5ext/internal/consts"
)

//
// hasher contains state for an md5 hash
//

type hasher struct {
	state [4]uint32
	len   uint64 // bytes compressed so far
}

func newHasher() hasher {
	return hasher{state: [4]uint32(iv)}
}

func (a *hasher) reset() {
	a.state = [4]uint32(iv)
	a.len = 0
}

// update compresses p, which must be block aligned.
func (a *hasher) update(p []byte) {
	blocks(&a.state, p)
	a.len += uint64(len(p))
}

func (a *hasher) digest() Digest {
	return State(a.state).Digest()
}

//
// buffered hasher accepting input of any length
//

type buffered struct {
	h   hasher
	buf [consts.BlockLen]byte
	n   int
}

func (b *buffered) reset() {
	b.h.reset()
	b.n = 0
}

func (b *buffered) write(p []byte) {
	if b.n > 0 {
		c := copy(b.buf[b.n:], p)
		b.n += c
		p = p[c:]
		if b.n < consts.BlockLen {
			return
		}
		b.h.update(b.buf[:])
		b.n = 0
	}

	if whole := len(p) &^ (consts.BlockLen - 1); whole > 0 {
		b.h.update(p[:whole])
		p = p[whole:]
	}

	b.n = copy(b.buf[:], p)
}

// finalize pads a copy of the current state and returns its digest. The
// receiver is left as is so more data can be written afterwards.
func (b *buffered) finalize() Digest {
	total := b.h.len + uint64(b.n)

	var tail [2 * consts.BlockLen]byte
	copy(tail[:], b.buf[:b.n])
	padded := AppendPad(tail[:b.n], total)

	h := b.h
	h.update(padded)
	return h.digest()
}
