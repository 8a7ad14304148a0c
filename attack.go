package md5ext

import (
	"fmt"
)

// Forgery is the result of a length extension.
type Forgery struct {
	// Message is the original padding followed by the appended data. It is
	// what a verifier has to see after the unknown secret prefix.
	Message []byte

	// Digest is the MD5 digest of secret || Message.
	Digest Digest

	// Length is the total byte length of secret || Message.
	Length uint64
}

// Extend forges the digest of secret || Pad(n) || suffix given only the hex
// digest of an n byte secret. Nothing checks that known really is the digest
// of an n byte message: wrong inputs silently produce a wrong forgery.
func Extend(n int, known string, suffix []byte) (*Forgery, error) {
	d, err := ParseDigest(known)
	if err != nil {
		return nil, err
	}
	return ExtendDigest(n, d, suffix)
}

// ExtendDigest is Extend with an already decoded digest.
func ExtendDigest(n int, known Digest, suffix []byte) (*Forgery, error) {
	if n < 0 {
		str := fmt.Sprintf("secret length %d is negative", n)
		return nil, makeError(ErrInvalidLength, str)
	}

	prefix := uint64(n)
	if prefix > maxLength-maxPadLen || uint64(len(suffix)) > maxLength-maxPadLen-prefix {
		str := fmt.Sprintf("forging %d bytes onto a %d byte secret "+
			"overflows the length field", len(suffix), n)
		return nil, makeError(ErrInvalidLength, str)
	}

	// the original message was padded for its own length, which is all we
	// need to reproduce those bytes without knowing their content.
	message := AppendPad(make([]byte, 0, PadLen(prefix)+len(suffix)), prefix)
	resumed := prefix + uint64(len(message))
	message = append(message, suffix...)

	e, err := ResumeEngine(known.State(), resumed)
	if err != nil {
		return nil, err
	}
	log.Debugf("Resuming from state %08x at %d bytes", e.State(), resumed)

	total := resumed + uint64(len(suffix))
	tail := AppendPad(append(make([]byte, 0, len(suffix)+PadLen(total)),
		suffix...), total)
	if err := e.Update(tail); err != nil {
		return nil, err
	}

	f := &Forgery{
		Message: message,
		Digest:  e.Digest(),
		Length:  total,
	}
	log.Debugf("Forged %d byte message with digest %v", f.Length, f.Digest)
	return f, nil
}
