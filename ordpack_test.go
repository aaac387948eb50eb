package ordpack

import (
	"bytes"
	"math"
	"sort"
	"testing"

	"github.com/arloliu/ordpack/errs"
	"github.com/stretchr/testify/require"
)

func TestEncodeUint64_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 63, 64, 8255, 8256, 1 << 32, math.MaxUint64}
	for _, v := range values {
		got, err := DecodeUint64(EncodeUint64(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestEncodeInt64_RoundTrip(t *testing.T) {
	values := []int64{math.MinInt64, -8257, -8256, -65, -64, -1, 0, 63, 8256, math.MaxInt64}
	for _, v := range values {
		got, err := DecodeInt64(EncodeInt64(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestEncodeInt64_SortsAsBytes(t *testing.T) {
	values := []int64{42, -8257, 0, math.MaxInt64, -1, 8256, math.MinInt64, 63, -64}

	encoded := make([][]byte, len(values))
	for i, v := range values {
		encoded[i] = EncodeInt64(v)
	}

	// Sorting the encodings as raw bytes must equal sorting the values
	// numerically.
	sort.Slice(encoded, func(i, j int) bool { return bytes.Compare(encoded[i], encoded[j]) < 0 })
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	for i, v := range values {
		got, err := DecodeInt64(encoded[i])
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestDecode_MalformedInput(t *testing.T) {
	_, err := DecodeUint64([]byte{0x00})
	require.ErrorIs(t, err, errs.ErrInvalidMarker)

	_, err = DecodeUint64([]byte{0xE1})
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, err = DecodeInt64([]byte{0xF3})
	require.ErrorIs(t, err, errs.ErrInvalidMarker)

	_, err = DecodeInt64(nil)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	buf := append(EncodeUint64(8256), EncodeUint64(42)...)

	v, err := DecodeUint64(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(8256), v)
}
