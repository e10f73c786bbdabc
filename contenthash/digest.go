package contenthash

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Digest returns the SHA3-256 hash of the given data. Hashing a bounded
// byte slice cannot fail; an error here means the underlying hash
// implementation itself misbehaved, and is reported as ErrDigestFailed
// without being masked or retried.
func Digest(data []byte) (*Hash, error) {
	hasher := sha3.New256()
	_, err := hasher.Write(data)
	if err != nil {
		return nil, errors.Wrapf(ErrDigestFailed, "writing %d bytes to the SHA3-256 state: %s",
			len(data), err)
	}

	var hash Hash
	// Sum is given the hash's own buffer to avoid an extra allocation; it
	// always returns exactly Size bytes for SHA3-256.
	copy(hash.hashArray[:], hasher.Sum(hash.hashArray[:0]))
	return &hash, nil
}
