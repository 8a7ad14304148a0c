package md5ext

import (
	"encoding/binary"

	"github.com/zeebo/md5ext/internal/consts"
)

// PadLen returns the number of padding bytes MD5 appends to an n byte
// message. The result is always between 9 and 72 inclusive.
func PadLen(n uint64) int {
	// the marker plus zeros must end on offset 56 of a block. once n%64
	// passes 55 the subtraction wraps, which modulo 64 is exactly the
	// extra block of zeros needed.
	zeros := (consts.LenOffset - 1 - n%consts.BlockLen) % consts.BlockLen
	return 1 + int(zeros) + 8
}

// Pad returns the padding MD5 appends to an n byte message: a 0x80 marker,
// zeros up to 56 mod 64, then the bit length of the message as a
// little-endian uint64.
func Pad(n uint64) []byte {
	return AppendPad(make([]byte, 0, PadLen(n)), n)
}

// AppendPad appends the padding for an n byte message to dst and returns the
// extended buffer.
func AppendPad(dst []byte, n uint64) []byte {
	plen := PadLen(n)

	off := len(dst)
	if cap(dst)-off < plen {
		tmp := make([]byte, off, off+plen)
		copy(tmp, dst)
		dst = tmp
	}
	dst = dst[:off+plen]

	pad := dst[off:]
	pad[0] = consts.Marker
	for i := 1; i < plen-8; i++ {
		pad[i] = 0
	}
	binary.LittleEndian.PutUint64(pad[plen-8:], n<<3)

	return dst
}
