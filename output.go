package md5ext

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Encoding selects how a forged message is presented to a verifier.
type Encoding int

const (
	// Raw leaves the bytes as they are.
	Raw Encoding = iota

	// URL percent-encodes every byte except ASCII letters, digits and
	// "-._~/".
	URL

	// Base64 uses the standard padded alphabet.
	Base64

	// Hex uses lowercase hex.
	Hex
)

var encodingNames = [...]string{
	Raw:    "raw",
	URL:    "url",
	Base64: "base64",
	Hex:    "hex",
}

// String returns the name of the encoding.
func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// ParseEncoding returns the Encoding with the given name.
func ParseEncoding(name string) (Encoding, error) {
	for e, n := range encodingNames {
		if strings.EqualFold(n, name) {
			return Encoding(e), nil
		}
	}
	return 0, fmt.Errorf("unknown encoding %q", name)
}

// Encode renders the forged message in the given encoding.
func (f *Forgery) Encode(e Encoding) string {
	return EncodeBytes(f.Message, e)
}

// EncodeBytes renders p in the given encoding. Unknown encodings fall back
// to Raw.
func EncodeBytes(p []byte, e Encoding) string {
	switch e {
	case URL:
		return quote(p)
	case Base64:
		return base64.StdEncoding.EncodeToString(p)
	case Hex:
		return hex.EncodeToString(p)
	default:
		return string(p)
	}
}

const upperhex = "0123456789ABCDEF"

func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '-', '.', '_', '~', '/':
		return false
	}
	return true
}

// quote percent-encodes p. net/url has no mode that escapes the sub-delims
// while keeping '/', so it is done by hand.
func quote(p []byte) string {
	n := 0
	for _, c := range p {
		if shouldEscape(c) {
			n++
		}
	}
	if n == 0 {
		return string(p)
	}

	var b strings.Builder
	b.Grow(len(p) + 2*n)
	for _, c := range p {
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
