package md5ext

import (
	"fmt"

	"github.com/zeebo/md5ext/internal/consts"
)

// Engine is the block level MD5 state machine. It never pads on its own:
// callers append Pad themselves and hand over whole blocks. Keeping padding
// out of the engine is what lets it keep hashing from a state it did not
// produce.
type Engine struct {
	h hasher
}

// NewEngine returns an Engine holding the standard initial state.
func NewEngine() *Engine {
	return &Engine{h: newHasher()}
}

// ResumeEngine returns an Engine whose state is st, as if n bytes had already
// been compressed from the standard initial state. It is attack support
// rather than general hashing API: it is how a digest of an unknown message
// is turned back into a running hash. n must be a multiple of 64.
func ResumeEngine(st State, n uint64) (*Engine, error) {
	if n%consts.BlockLen != 0 {
		str := fmt.Sprintf("resumed length %d is not a multiple of %d", n,
			consts.BlockLen)
		return nil, makeError(ErrInvalidLength, str)
	}
	if n > maxLength {
		str := fmt.Sprintf("resumed length %d exceeds %d", n,
			uint64(maxLength))
		return nil, makeError(ErrInvalidLength, str)
	}
	return &Engine{h: hasher{state: [4]uint32(st), len: n}}, nil
}

// Update compresses p, which must be padded to a whole number of 64 byte
// blocks. On error the state is left untouched.
func (e *Engine) Update(p []byte) error {
	if len(p)%consts.BlockLen != 0 {
		str := fmt.Sprintf("input is %d bytes, not a multiple of %d", len(p),
			consts.BlockLen)
		return makeError(ErrInvalidBlockSize, str)
	}
	e.h.update(p)
	return nil
}

// Digest returns the current state serialized as a digest.
func (e *Engine) Digest() Digest {
	return e.h.digest()
}

// State returns the current chaining value.
func (e *Engine) State() State {
	return State(e.h.state)
}

// Len returns how many bytes the state accounts for, including any resumed
// prefix.
func (e *Engine) Len() uint64 {
	return e.h.len
}

// Reset returns the engine to the standard initial state.
func (e *Engine) Reset() {
	e.h.reset()
}
