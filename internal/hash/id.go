package hash

import "github.com/cespare/xxhash/v2"

// Fragment computes the xxHash64 of a pre-encoded label fragment.
func Fragment(data []byte) uint64 {
	return xxhash.Sum64(data)
}
