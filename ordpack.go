// Package ordpack provides a variable-length, order-preserving encoding for
// 64-bit integers, plus a checksummed block format for batches of encoded
// integers.
//
// The core property of the encoding is that unsigned lexicographic
// (byte-by-byte) comparison of two encoded buffers yields the same result as
// numeric comparison of the original integers. This makes the encoding usable
// as a sort-key component inside storage engines, where keys must be ordered
// as raw bytes without being decoded.
//
// # Core Features
//
//   - Order-preserving: bytes.Compare(Encode(a), Encode(b)) matches a vs b
//   - Compact: 1 byte for values in [-64, 63], at most 9 bytes for any int64
//     or uint64
//   - Self-framing: the header byte determines the encoded length, so
//     encodings can be concatenated without separators
//   - Pure: no shared state, safe for unrestricted concurrent use
//
// # Basic Usage
//
// Encoding and decoding single values:
//
//	key := ordpack.EncodeUint64(8256) // [0xE1, 0x00]
//	v, err := ordpack.DecodeUint64(key)
//
//	key = ordpack.EncodeInt64(-65) // [0x3F, 0xFF]
//	i, err := ordpack.DecodeInt64(key)
//
// Ordering:
//
//	a := ordpack.EncodeInt64(-8257)
//	b := ordpack.EncodeInt64(42)
//	bytes.Compare(a, b) // -1, matching -8257 < 42
//
// # Package Structure
//
// This package provides thin wrappers around the codec package for the most
// common single-value operations. For append-style encoding, size queries,
// header classification, and consumed-byte counts, use the codec package
// directly. For batching many keys into a checksummed, optionally compressed
// block, use the block package.
package ordpack

import (
	"github.com/arloliu/ordpack/codec"
)

// EncodeUint64 returns the order-preserving encoding of v as a newly
// allocated buffer. It never fails.
func EncodeUint64(v uint64) []byte {
	return codec.EncodeUint64(v)
}

// DecodeUint64 decodes a single unsigned integer from the front of buf.
// Trailing bytes beyond the encoded length are ignored.
//
// Returns errs.ErrInvalidMarker or errs.ErrTruncated on malformed input.
func DecodeUint64(buf []byte) (uint64, error) {
	v, _, err := codec.DecodeUint64(buf)

	return v, err
}

// EncodeInt64 returns the order-preserving encoding of v as a newly allocated
// buffer. It never fails. Non-negative values encode identically to
// EncodeUint64.
func EncodeInt64(v int64) []byte {
	return codec.EncodeInt64(v)
}

// DecodeInt64 decodes a single signed integer from the front of buf.
// Trailing bytes beyond the encoded length are ignored.
//
// Returns errs.ErrInvalidMarker or errs.ErrTruncated on malformed input.
func DecodeInt64(buf []byte) (int64, error) {
	v, _, err := codec.DecodeInt64(buf)

	return v, err
}
