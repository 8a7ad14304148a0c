package md5ext

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidBlockSize indicates input handed to the compression
	// function or to an Engine was not a whole number of 64 byte blocks.
	ErrInvalidBlockSize = ErrorKind("ErrInvalidBlockSize")

	// ErrInvalidDigestEncoding indicates digest text did not decode to
	// exactly 16 bytes.
	ErrInvalidDigestEncoding = ErrorKind("ErrInvalidDigestEncoding")

	// ErrInvalidLength indicates a negative message length, a resumed
	// length that is not block aligned, or a length whose bit count does
	// not fit the 64 bit length field.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to hashing or forging a digest.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
