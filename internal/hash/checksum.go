// Package hash provides the checksum function used by block headers.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given payload.
//
// xxHash64 is not cryptographic; it detects corruption, not tampering.
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
