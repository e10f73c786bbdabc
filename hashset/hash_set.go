package hashset

import (
	"strings"

	"github.com/casknet/cask/contenthash"
)

// HashSet is an unordered set of content hashes.
type HashSet map[contenthash.Hash]struct{}

// New creates an empty HashSet.
func New() HashSet {
	return HashSet{}
}

// NewFromSlice creates a HashSet out of the given hashes.
func NewFromSlice(hashes ...*contenthash.Hash) HashSet {
	set := New()

	for _, hash := range hashes {
		set.Add(hash)
	}

	return set
}

func (hs HashSet) String() string {
	hashStrings := make([]string, 0, len(hs))
	for hash := range hs {
		hashStrings = append(hashStrings, hash.String())
	}
	return strings.Join(hashStrings, ", ")
}

// Add adds the given hash to this set.
func (hs HashSet) Add(hash *contenthash.Hash) {
	hs[*hash] = struct{}{}
}

// Remove removes the given hash from this set.
func (hs HashSet) Remove(hash *contenthash.Hash) {
	delete(hs, *hash)
}

// Contains returns whether the given hash is in this set.
func (hs HashSet) Contains(hash *contenthash.Hash) bool {
	_, ok := hs[*hash]
	return ok
}

// Subtract returns the set of hashes in this set that are not in other.
func (hs HashSet) Subtract(other HashSet) HashSet {
	diff := New()

	for hash := range hs {
		hash := hash
		if !other.Contains(&hash) {
			diff.Add(&hash)
		}
	}

	return diff
}

// ContainsAllInSlice returns whether all the hashes in the given slice
// are in this set.
func (hs HashSet) ContainsAllInSlice(slice []*contenthash.Hash) bool {
	for _, hash := range slice {
		if !hs.Contains(hash) {
			return false
		}
	}

	return true
}

// ToSlice returns the hashes in this set as a slice, in no particular order.
func (hs HashSet) ToSlice() []*contenthash.Hash {
	slice := make([]*contenthash.Hash, 0, len(hs))

	for hash := range hs {
		hash := hash
		slice = append(slice, &hash)
	}

	return slice
}

// ToSortedSlice returns the hashes in this set as a slice in canonical order.
func (hs HashSet) ToSortedSlice() []*contenthash.Hash {
	slice := hs.ToSlice()
	contenthash.Sort(slice)
	return slice
}
