package consts

import (
	"golang.org/x/sys/cpu"
)

// IsLittleEndian reports whether block words can be read directly out of the
// input bytes.
var IsLittleEndian = !cpu.IsBigEndian

var IV = [...]uint32{IV0, IV1, IV2, IV3}

const (
	IV0 = 0x67452301
	IV1 = 0xefcdab89
	IV2 = 0x98badcfe
	IV3 = 0x10325476
)

const (
	BlockLen = 64
	Size     = 16

	// LenOffset is where the bit length starts inside the final block.
	LenOffset = BlockLen - 8

	Marker = 0x80
)
