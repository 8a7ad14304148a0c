package utils

import (
	"encoding/binary"
)

// BytesToWords decodes a block into sixteen little-endian words.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	words[0] = binary.LittleEndian.Uint32(bytes[0*4:])
	words[1] = binary.LittleEndian.Uint32(bytes[1*4:])
	words[2] = binary.LittleEndian.Uint32(bytes[2*4:])
	words[3] = binary.LittleEndian.Uint32(bytes[3*4:])
	words[4] = binary.LittleEndian.Uint32(bytes[4*4:])
	words[5] = binary.LittleEndian.Uint32(bytes[5*4:])
	words[6] = binary.LittleEndian.Uint32(bytes[6*4:])
	words[7] = binary.LittleEndian.Uint32(bytes[7*4:])
	words[8] = binary.LittleEndian.Uint32(bytes[8*4:])
	words[9] = binary.LittleEndian.Uint32(bytes[9*4:])
	words[10] = binary.LittleEndian.Uint32(bytes[10*4:])
	words[11] = binary.LittleEndian.Uint32(bytes[11*4:])
	words[12] = binary.LittleEndian.Uint32(bytes[12*4:])
	words[13] = binary.LittleEndian.Uint32(bytes[13*4:])
	words[14] = binary.LittleEndian.Uint32(bytes[14*4:])
	words[15] = binary.LittleEndian.Uint32(bytes[15*4:])
}

// WordsToBytes encodes the four state words into out, little-endian in word
// order A, B, C, D.
func WordsToBytes(words *[4]uint32, out *[16]byte) {
	binary.LittleEndian.PutUint32(out[0*4:], words[0])
	binary.LittleEndian.PutUint32(out[1*4:], words[1])
	binary.LittleEndian.PutUint32(out[2*4:], words[2])
	binary.LittleEndian.PutUint32(out[3*4:], words[3])
}

// BytesToState is the inverse of WordsToBytes.
func BytesToState(in *[16]byte, words *[4]uint32) {
	words[0] = binary.LittleEndian.Uint32(in[0*4:])
	words[1] = binary.LittleEndian.Uint32(in[1*4:])
	words[2] = binary.LittleEndian.Uint32(in[2*4:])
	words[3] = binary.LittleEndian.Uint32(in[3*4:])
}
