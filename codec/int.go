package codec

import "github.com/arloliu/ordpack/errs"

// AppendInt64 appends the order-preserving encoding of v to dst and returns
// the extended slice. Encoding never fails: every int64 fits in at most
// MaxSize bytes.
//
// Non-negative values delegate to AppendUint64, so there is a single encoding
// space for all non-negative integers regardless of declared signedness.
//
// Category selection for negatives:
//   - -64 to -1: single byte, 6-bit offset from -64 in the header low bits
//   - -8256 to -65: two bytes, 13-bit offset from -8256 split across header
//     and payload
//   - below -8256: header with length nibble, then the minimal big-endian
//     two's-complement bytes of v; the nibble stores the leading all-ones byte
//     count (8-length) so that more-negative values sort first
func AppendInt64(dst []byte, v int64) []byte {
	if v >= 0 {
		return AppendUint64(dst, uint64(v))
	}

	switch {
	case v >= neg1ByteMin:
		return append(dst, neg1ByteMarker|byte(v-neg1ByteMin))
	case v >= neg2ByteMin:
		y := uint64(v - neg2ByteMin) // 0..8191

		return append(dst, neg2ByteMarker|byte(y>>8), byte(y))
	default:
		n := payloadSizeNeg(v)
		dst = append(dst, negMultiMarker|byte(8-n)) //nolint:gosec
		for shift := (n - 1) * 8; shift >= 0; shift -= 8 {
			dst = append(dst, byte(uint64(v)>>shift)) //nolint:gosec
		}

		return dst
	}
}

// EncodeInt64 returns the order-preserving encoding of v as a newly allocated
// buffer of exactly the encoded size. The returned buffer is owned by the
// caller.
func EncodeInt64(v int64) []byte {
	return AppendInt64(make([]byte, 0, SizeInt64(v)), v)
}

// DecodeInt64 decodes a single signed integer from the front of buf.
//
// Negative categories are handled directly; any other header is delegated to
// DecodeUint64 and the resulting bit pattern is reinterpreted as int64
// (two's-complement reinterpretation, not a numeric cast). DecodeInt64
// consumes exactly the bytes the header implies and ignores anything beyond
// them.
//
// Returns:
//   - int64: The decoded value
//   - int: Number of bytes consumed from buf
//   - error: errs.ErrInvalidMarker if the header is reserved,
//     errs.ErrTruncated if buf is shorter than the header implies
func DecodeInt64(buf []byte) (int64, int, error) {
	if len(buf) == 0 {
		return 0, 0, errs.ErrTruncated
	}

	header := buf[0]
	switch header >> 4 {
	case 0x1: // 0001llll
		n := 8 - int(header&0x0F)
		if n < 0 {
			n = 0
		}
		if len(buf) < 1+n {
			return 0, 0, errs.ErrTruncated
		}
		// Unread high bytes start as all-one bits: two's-complement sign
		// extension of the truncated payload.
		x := ^uint64(0)
		for _, b := range buf[1 : 1+n] {
			x = x<<8 | uint64(b)
		}

		return int64(x), 1 + n, nil //nolint:gosec
	case 0x2, 0x3: // 001xxxxx
		if len(buf) < 2 {
			return 0, 0, errs.ErrTruncated
		}
		y := int64(header&0x1F)<<8 | int64(buf[1])

		return y + neg2ByteMin, 2, nil
	case 0x4, 0x5, 0x6, 0x7: // 01xxxxxx
		return int64(header&0x3F) + neg1ByteMin, 1, nil
	default:
		v, n, err := DecodeUint64(buf)

		return int64(v), n, err //nolint:gosec
	}
}
