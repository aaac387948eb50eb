package codec

import "github.com/arloliu/ordpack/errs"

// AppendUint64 appends the order-preserving encoding of v to dst and returns
// the extended slice. Encoding never fails: every uint64 fits in at most
// MaxSize bytes.
//
// Category selection:
//   - 0-63: single byte, value packed into the header low bits
//   - 64-8255: two bytes, 13-bit offset from 64 split across header and payload
//   - above 8255: header with length nibble, then the minimal big-endian bytes
//     of value-8256
func AppendUint64(dst []byte, v uint64) []byte {
	switch {
	case v <= pos1ByteMax:
		return append(dst, pos1ByteMarker|byte(v))
	case v <= pos2ByteMax:
		y := v - pos1ByteMax - 1

		return append(dst, pos2ByteMarker|byte(y>>8), byte(y))
	default:
		y := v - pos2ByteMax - 1
		n := payloadSizePos(y)
		dst = append(dst, posMultiMarker|byte(n)) //nolint:gosec
		for shift := (n - 1) * 8; shift >= 0; shift -= 8 {
			dst = append(dst, byte(y>>shift))
		}

		return dst
	}
}

// EncodeUint64 returns the order-preserving encoding of v as a newly
// allocated buffer of exactly the encoded size. The returned buffer is owned
// by the caller.
func EncodeUint64(v uint64) []byte {
	return AppendUint64(make([]byte, 0, SizeUint64(v)), v)
}

// DecodeUint64 decodes a single unsigned integer from the front of buf.
//
// The header byte alone determines how many bytes the encoding occupies;
// DecodeUint64 consumes exactly that many bytes and ignores anything beyond
// them, so buf may contain further concatenated encodings.
//
// Returns:
//   - uint64: The decoded value
//   - int: Number of bytes consumed from buf
//   - error: errs.ErrInvalidMarker if the header is reserved or belongs to a
//     negative category, errs.ErrTruncated if buf is shorter than the header
//     implies
func DecodeUint64(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, errs.ErrTruncated
	}

	header := buf[0]
	switch header >> 4 {
	case 0x8, 0x9, 0xA, 0xB: // 10xxxxxx
		return uint64(header & 0x3F), 1, nil
	case 0xC, 0xD: // 110xxxxx
		if len(buf) < 2 {
			return 0, 0, errs.ErrTruncated
		}
		y := uint64(header&0x1F)<<8 | uint64(buf[1])

		return y + pos1ByteMax + 1, 2, nil
	case 0xE: // 1110llll
		n := int(header & 0x0F)
		if len(buf) < 1+n {
			return 0, 0, errs.ErrTruncated
		}
		var y uint64
		for _, b := range buf[1 : 1+n] {
			y = y<<8 | uint64(b)
		}

		return y + pos2ByteMax + 1, 1 + n, nil
	default:
		// Reserved nibbles and the negative categories: neither is a valid
		// unsigned encoding.
		return 0, 0, errs.ErrInvalidMarker
	}
}
