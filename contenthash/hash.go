package contenthash

import (
	"bytes"
	"crypto/subtle"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Size of the array used to store hashes.
const Size = 32

// Hash is the immutable 256-bit digest of some content. The underlying
// bytes are never exposed directly, so a Hash can never be observed to
// change after construction.
type Hash struct {
	hashArray [Size]byte
}

// EmptyHash is the all-zero hash. Callers share it by reference and must
// never modify it.
var EmptyHash = Hash{}

// FromByteArray constructs a Hash from the given byte array.
func FromByteArray(hashBytes *[Size]byte) *Hash {
	return &Hash{
		hashArray: *hashBytes,
	}
}

// FromBytes constructs a Hash from the given byte slice. The slice is
// copied, so the caller is free to reuse it afterwards.
func FromBytes(hashBytes []byte) (*Hash, error) {
	if len(hashBytes) != Size {
		return nil, errors.Wrapf(ErrInvalidLength, "invalid hash size. Want: %d, got: %d",
			Size, len(hashBytes))
	}
	hash := Hash{
		hashArray: [Size]byte{},
	}
	copy(hash.hashArray[:], hashBytes)
	return &hash, nil
}

// FromString constructs a Hash from the hexadecimal string of a hash. An
// optional 0x/0X prefix is accepted; the remainder must decode to exactly
// Size bytes.
func FromString(hashString string) (*Hash, error) {
	if strings.HasPrefix(hashString, "0x") || strings.HasPrefix(hashString, "0X") {
		hashString = hashString[2:]
	}

	expectedLength := Size * 2
	if len(hashString) != expectedLength {
		return nil, errors.Wrapf(ErrInvalidHex,
			"hash string length is %d, while it should be %d (%d bytes)",
			len(hashString), expectedLength, Size)
	}

	hashBytes, err := hex.DecodeString(hashString)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidHex, "couldn't decode hash hex: %s", err)
	}

	return FromBytes(hashBytes)
}

// String returns the Hash as the hexadecimal string of the hash.
func (hash Hash) String() string {
	return hex.EncodeToString(hash.hashArray[:])
}

// ShortString returns an abbreviated form of the hash for display: the
// first and last six hexadecimal characters around a literal "...". It is
// lossy and never round-trips through FromString.
func (hash Hash) ShortString() string {
	hashString := hash.String()
	return hashString[:6] + "..." + hashString[len(hashString)-6:]
}

// ByteArray returns the bytes in this hash represented as a byte array.
// The hash bytes are cloned, therefore it is safe to modify the resulting array.
func (hash *Hash) ByteArray() *[Size]byte {
	arrayClone := hash.hashArray
	return &arrayClone
}

// ByteSlice returns the bytes in this hash represented as a byte slice.
// The hash bytes are cloned, therefore it is safe to modify the resulting slice.
func (hash *Hash) ByteSlice() []byte {
	return hash.ByteArray()[:]
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Cmp accordingly.
var _ Hash = Hash{hashArray: [Size]byte{}}

// Equal returns whether hash equals to other. The comparison runs in
// constant time over all Size bytes so that equality checks in
// verification paths don't leak where the hashes differ.
func (hash *Hash) Equal(other *Hash) bool {
	if hash == nil || other == nil {
		return hash == other
	}

	return subtle.ConstantTimeCompare(hash.hashArray[:], other.hashArray[:]) == 1
}

// IsEmpty returns whether this hash is the all-zero EmptyHash.
func (hash *Hash) IsEmpty() bool {
	return hash.Equal(&EmptyHash)
}

// Cmp compares hash to other byte-wise, starting at byte 0, and returns:
//
//	-1 if hash <  other
//	 0 if hash == other
//	+1 if hash >  other
//
// It is a total order consistent with Equal.
func (hash *Hash) Cmp(other *Hash) int {
	return bytes.Compare(hash.hashArray[:], other.hashArray[:])
}

// Less returns true iff hash is less than other.
func (hash *Hash) Less(other *Hash) bool {
	return hash.Cmp(other) < 0
}

// Sort sorts the given hashes slice in-place into canonical order.
func Sort(hashes []*Hash) {
	sort.Slice(hashes, func(i, j int) bool {
		return hashes[i].Less(hashes[j])
	})
}

// CloneHashes returns a clone of the given hashes slice.
// Note: since Hash is a read-only type, the clone is shallow.
func CloneHashes(hashes []*Hash) []*Hash {
	clone := make([]*Hash, len(hashes))
	copy(clone, hashes)
	return clone
}

// HashesEqual returns whether the given hash slices are equal.
func HashesEqual(a, b []*Hash) bool {
	if len(a) != len(b) {
		return false
	}

	for i, hash := range a {
		if !hash.Equal(b[i]) {
			return false
		}
	}
	return true
}

// ToStrings converts a slice of hashes into a slice of the corresponding strings.
func ToStrings(hashes []*Hash) []string {
	strings := make([]string, len(hashes))
	for i, hash := range hashes {
		strings[i] = hash.String()
	}
	return strings
}
