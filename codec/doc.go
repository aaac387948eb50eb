// Package codec implements a variable-length, order-preserving encoding for
// 64-bit integers.
//
// The encoding maps every uint64 and int64 to a 1-9 byte sequence such that
// comparing two encoded sequences byte-by-byte (as unsigned bytes) yields the
// same result as comparing the original integers numerically. This makes the
// encoding suitable as a sort-key representation inside storage engines, where
// keys must be ordered as raw bytes without being decoded first.
//
// # Wire Format
//
// The first byte of every encoding is the header byte. Its high-order bits
// select one of seven categories; the remaining bits carry either value bits
// (1-byte and 2-byte categories) or a length nibble (multi-byte categories).
// Payload bytes, when present, are big-endian.
//
//	Header byte  | Extra bytes | Value range
//	-------------+-------------+---------------------------
//	[0000 xxxx]  | -           | reserved, never produced
//	[0001 llll]  | 8-llll      | below -8256
//	[001x xxxx]  | 1           | -8256 .. -65
//	[01xx xxxx]  | 0           | -64 .. -1
//	[10xx xxxx]  | 0           | 0 .. 63
//	[110x xxxx]  | 1           | 64 .. 8255
//	[1110 llll]  | llll        | above 8255
//	[1111 xxxx]  | -           | reserved, never produced
//
// The 2-byte categories store a 13-bit offset from the range minimum, split
// five bits in the header and eight bits in the payload byte. The positive
// multi-byte category stores value-8256 in the minimal number of big-endian
// bytes, with that byte count in the length nibble. The negative multi-byte
// category stores the raw two's-complement bytes of the value, truncated to
// the minimal length, and its length nibble holds the count of leading
// all-ones bytes (8-length) so that more-negative values sort first.
//
// # Usage
//
// Encoding never fails; decoding fails only on a reserved header byte
// (errs.ErrInvalidMarker) or a buffer shorter than its header implies
// (errs.ErrTruncated). Decoders consume exactly the bytes the header implies
// and report the consumed count, so multiple encodings can be concatenated and
// scanned sequentially:
//
//	key := codec.AppendUint64(nil, 42)
//	key = codec.AppendUint64(key, 8256)
//
//	v1, n, _ := codec.DecodeUint64(key)
//	v2, _, _ := codec.DecodeUint64(key[n:])
//
// All functions are pure and safe for concurrent use.
package codec
