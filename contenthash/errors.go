package contenthash

import "github.com/pkg/errors"

// ErrInvalidLength denotes that a Hash was constructed from a byte
// sequence whose length is not exactly Size.
var ErrInvalidLength = errors.New("invalid hash length")

// ErrInvalidHex denotes that a Hash was parsed from a string that is not
// valid hexadecimal or does not decode to exactly Size bytes.
var ErrInvalidHex = errors.New("invalid hash hex")

// ErrDigestFailed denotes that the underlying digest implementation
// reported a failure while hashing.
var ErrDigestFailed = errors.New("digest computation failed")

// IsInvalidLengthError checks whether an error is an ErrInvalidLength.
func IsInvalidLengthError(err error) bool {
	return errors.Is(err, ErrInvalidLength)
}

// IsInvalidHexError checks whether an error is an ErrInvalidHex.
func IsInvalidHexError(err error) bool {
	return errors.Is(err, ErrInvalidHex)
}

// IsDigestFailedError checks whether an error is an ErrDigestFailed.
func IsDigestFailedError(err error) bool {
	return errors.Is(err, ErrDigestFailed)
}
