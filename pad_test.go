package md5ext

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/zeebo/assert"
)

func TestPadProperties(t *testing.T) {
	for n := uint64(0); n < 1024; n++ {
		pad := Pad(n)

		assert.Equal(t, len(pad), PadLen(n))
		assert.Equal(t, (n+uint64(len(pad)))%BlockSize, uint64(0))
		if len(pad) < 9 || len(pad) > 72 {
			t.Fatalf("pad(%d) has length %d", n, len(pad))
		}

		assert.Equal(t, pad[0], byte(0x80))
		assert.Equal(t, bytes.Count(pad[1:len(pad)-8], []byte{0}), len(pad)-9)
		assert.Equal(t, binary.LittleEndian.Uint64(pad[len(pad)-8:]), n*8)
	}
}

func TestPadBoundaries(t *testing.T) {
	cases := []struct {
		n   uint64
		len int
	}{
		{0, 64},
		{54, 10},
		{55, 9},
		{56, 72},
		{57, 71},
		{63, 65},
		{64, 64},
		{64 + 55, 9},
		{64 + 56, 72},
		{64 + 63, 65},
	}

	for _, c := range cases {
		assert.Equal(t, PadLen(c.n), c.len)
	}
}

func TestAppendPad(t *testing.T) {
	prefix := []byte("hello")

	// enough capacity is reused in place
	buf := make([]byte, len(prefix), 64)
	copy(buf, prefix)
	out := AppendPad(buf, 5)
	assert.Equal(t, len(out), 64)
	if &out[0] != &buf[0] {
		t.Fatal("AppendPad reallocated a buffer with enough capacity")
	}
	assert.DeepEqual(t, out[:5], prefix)

	// dirty spare capacity is overwritten with zeros
	dirty := bytes.Repeat([]byte{0xff}, 64)
	out = AppendPad(dirty[:0], 0)
	assert.DeepEqual(t, out, Pad(0))

	// short capacity grows without touching the input
	out = AppendPad(prefix, 5)
	assert.Equal(t, string(prefix), "hello")
	assert.DeepEqual(t, out[5:], Pad(5))
}

func TestPadLengthWraps(t *testing.T) {
	// the bit length is taken modulo 2^64
	pad := Pad(1 << 61)
	assert.Equal(t, binary.LittleEndian.Uint64(pad[len(pad)-8:]), uint64(0))
}
