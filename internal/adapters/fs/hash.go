package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashKey returns a fixed-width hex XXHash of s, suitable as a file name.
func HashKey(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
