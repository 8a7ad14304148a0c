package md5ext

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/md5ext/internal/consts"
	"github.com/zeebo/md5ext/internal/utils"
)

// State is the four word MD5 chaining value A, B, C, D.
type State [4]uint32

// Digest returns the state serialized little-endian in word order A, B, C, D.
func (s State) Digest() (d Digest) {
	words := [4]uint32(s)
	utils.WordsToBytes(&words, (*[consts.Size]byte)(&d))
	return d
}

// Digest is a 16 byte MD5 digest.
type Digest [Size]byte

// State decodes the digest back into the chaining value that produced it.
// Because MD5 has no finalization step the two are interchangeable.
func (d Digest) State() State {
	var words [4]uint32
	buf := [consts.Size]byte(d)
	utils.BytesToState(&buf, &words)
	return State(words)
}

// String returns the digest as 32 lowercase hex characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest decodes 32 hex characters into a Digest. Either case is
// accepted.
func ParseDigest(s string) (d Digest, err error) {
	if len(s) != 2*Size {
		str := fmt.Sprintf("digest %q has %d characters, want %d", s,
			len(s), 2*Size)
		return d, makeError(ErrInvalidDigestEncoding, str)
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		str := fmt.Sprintf("digest %q is not valid hex: %v", s, err)
		return Digest{}, makeError(ErrInvalidDigestEncoding, str)
	}
	return d, nil
}
