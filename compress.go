package md5ext

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/zeebo/md5ext/internal/consts"
	"github.com/zeebo/md5ext/internal/utils"
)

// compress mixes one decoded block into state.
func compress(state *[4]uint32, m *[16]uint32) {
	a, b, c, d := state[0], state[1], state[2], state[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int

		switch i >> 4 {
		case 0:
			f, g = (b&c)|(^b&d), i
		case 1:
			f, g = (b&d)|(c&^d), (5*i+1)%16
		case 2:
			f, g = b^c^d, (3*i+5)%16
		default:
			f, g = c^(b|^d), (7*i)%16
		}

		tmp := b + bits.RotateLeft32(a+f+sines[i]+m[g], shifts[i])
		a, b, c, d = d, tmp, b, c
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}

// blocks compresses every whole block in p into state. Trailing bytes past
// the last whole block are ignored.
func blocks(state *[4]uint32, p []byte) {
	var words [16]uint32

	for len(p) >= consts.BlockLen {
		var block *[16]uint32
		if consts.OptimizeLittleEndian {
			block = (*[16]uint32)(unsafe.Pointer(&p[0]))
		} else {
			utils.BytesToWords((*[consts.BlockLen]byte)(unsafe.Pointer(&p[0])), &words)
			block = &words
		}

		compress(state, block)
		p = p[consts.BlockLen:]
	}
}

// Compress runs the compression function over exactly one 64 byte block and
// returns the resulting state. The input state is not modified.
func Compress(st State, block []byte) (State, error) {
	if len(block) != consts.BlockLen {
		str := fmt.Sprintf("block is %d bytes, want %d", len(block),
			consts.BlockLen)
		return st, makeError(ErrInvalidBlockSize, str)
	}

	words := [4]uint32(st)
	blocks(&words, block)
	return State(words), nil
}
