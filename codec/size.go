package codec

import "math/bits"

// payloadSizePos returns the minimal number of big-endian bytes needed to
// represent the non-negative magnitude m, clamped to a minimum of 1 so that
// zero still occupies one (zero) byte.
func payloadSizePos(m uint64) int {
	if m == 0 {
		return 1
	}

	return 8 - bits.LeadingZeros64(m)/8
}

// payloadSizeNeg returns the minimal number of big-endian bytes needed to
// represent the negative value v in two's complement, computed symmetrically
// to payloadSizePos using the count of leading one bits. Clamped to a minimum
// of 1 for v == -1 (all bits set).
func payloadSizeNeg(v int64) int {
	leadingOnes := bits.LeadingZeros64(^uint64(v))
	n := 8 - leadingOnes/8
	if n == 0 {
		return 1
	}

	return n
}

// SizeUint64 returns the encoded size of v in bytes, header included.
//
// The result ranges from 1 (values 0-63) to MaxSize (values needing a full
// 8-byte payload).
func SizeUint64(v uint64) int {
	if v <= pos1ByteMax {
		return 1
	}
	if v <= pos2ByteMax {
		return 2
	}

	return 1 + payloadSizePos(v-pos2ByteMax-1)
}

// SizeInt64 returns the encoded size of v in bytes, header included.
//
// Non-negative values share the positive categories with SizeUint64.
func SizeInt64(v int64) int {
	if v >= 0 {
		return SizeUint64(uint64(v))
	}
	if v >= neg1ByteMin {
		return 1
	}
	if v >= neg2ByteMin {
		return 2
	}

	return 1 + payloadSizeNeg(v)
}
