package codec

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/arloliu/ordpack/errs"
	"github.com/stretchr/testify/require"
)

func TestEncodeUint64_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  []byte
	}{
		{"zero", 0, []byte{0x80}},
		{"one", 1, []byte{0x81}},
		{"pos1byte max", 63, []byte{0xBF}},
		{"pos2byte min", 64, []byte{0xC0, 0x00}},
		{"pos2byte interior", 4159, []byte{0xCF, 0xFF}},
		{"pos2byte max", 8255, []byte{0xDF, 0xFF}},
		{"posmulti min", 8256, []byte{0xE1, 0x00}},
		{"posmulti min+1", 8257, []byte{0xE1, 0x01}},
		{"posmulti 1-byte payload max", 8256 + 255, []byte{0xE1, 0xFF}},
		{"posmulti 2-byte payload min", 8256 + 256, []byte{0xE2, 0x01, 0x00}},
		{"posmulti 2-byte payload max", 8256 + 65535, []byte{0xE2, 0xFF, 0xFF}},
		{"posmulti 3-byte payload min", 8256 + 65536, []byte{0xE3, 0x01, 0x00, 0x00}},
		{"uint64 max", math.MaxUint64, []byte{0xE8, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xDF, 0xBF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeUint64(tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, SizeUint64(tt.value), len(got))
			require.LessOrEqual(t, len(got), MaxSize)
		})
	}
}

func TestDecodeUint64_RoundTrip(t *testing.T) {
	t.Run("Small value sweep", func(t *testing.T) {
		for v := uint64(0); v <= 100000; v++ {
			buf := EncodeUint64(v)
			got, n, err := DecodeUint64(buf)
			require.NoError(t, err)
			require.Equal(t, v, got)
			require.Equal(t, len(buf), n)
		}
	})

	t.Run("Power-of-two neighborhoods", func(t *testing.T) {
		for shift := 0; shift < 64; shift++ {
			base := uint64(1) << shift
			for _, v := range []uint64{base - 1, base, base + 1} {
				buf := EncodeUint64(v)
				got, n, err := DecodeUint64(buf)
				require.NoError(t, err, "value %d", v)
				require.Equal(t, v, got)
				require.Equal(t, len(buf), n)
			}
		}
	})

	t.Run("Random values", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 10000; i++ {
			v := rng.Uint64()
			got, n, err := DecodeUint64(EncodeUint64(v))
			require.NoError(t, err)
			require.Equal(t, v, got)
			require.Equal(t, SizeUint64(v), n)
		}
	})
}

func TestEncodeUint64_OrderPreservation(t *testing.T) {
	t.Run("Sorted boundary sequence", func(t *testing.T) {
		values := []uint64{
			0, 1, 62, 63, 64, 65, 4159, 8254, 8255, 8256, 8257,
			8256 + 255, 8256 + 256, 8256 + 65535, 8256 + 65536,
			1 << 20, 1 << 32, 1 << 48, 1<<63 - 1, 1 << 63, math.MaxUint64 - 1, math.MaxUint64,
		}
		for i := 1; i < len(values); i++ {
			prev := EncodeUint64(values[i-1])
			curr := EncodeUint64(values[i])
			require.Negative(t, bytes.Compare(prev, curr),
				"encode(%d) should sort before encode(%d)", values[i-1], values[i])
		}
	})

	t.Run("Random pairs", func(t *testing.T) {
		rng := rand.New(rand.NewSource(43))
		for i := 0; i < 10000; i++ {
			a, b := rng.Uint64(), rng.Uint64()
			cmp := bytes.Compare(EncodeUint64(a), EncodeUint64(b))
			switch {
			case a < b:
				require.Negative(t, cmp, "a=%d b=%d", a, b)
			case a > b:
				require.Positive(t, cmp, "a=%d b=%d", a, b)
			default:
				require.Zero(t, cmp, "a=%d b=%d", a, b)
			}
		}
	})
}

func TestDecodeUint64_InvalidMarker(t *testing.T) {
	t.Run("Reserved low nibble range", func(t *testing.T) {
		for header := 0x00; header <= 0x0F; header++ {
			_, _, err := DecodeUint64([]byte{byte(header), 0x00})
			require.ErrorIs(t, err, errs.ErrInvalidMarker, "header 0x%02X", header)
		}
	})

	t.Run("Reserved high nibble range", func(t *testing.T) {
		for header := 0xF0; header <= 0xFF; header++ {
			_, _, err := DecodeUint64([]byte{byte(header), 0x00})
			require.ErrorIs(t, err, errs.ErrInvalidMarker, "header 0x%02X", header)
		}
	})

	t.Run("Negative category headers", func(t *testing.T) {
		// A negative-category header is not a valid unsigned encoding.
		for _, header := range []byte{0x10, 0x16, 0x20, 0x3F, 0x40, 0x7F} {
			_, _, err := DecodeUint64([]byte{header, 0xFF, 0xFF})
			require.ErrorIs(t, err, errs.ErrInvalidMarker, "header 0x%02X", header)
		}
	})
}

func TestDecodeUint64_Truncated(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty buffer", nil},
		{"2-byte category missing payload", []byte{0xC0}},
		{"multi category missing payload", []byte{0xE1}},
		{"multi category short payload", []byte{0xE8, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xDF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeUint64(tt.buf)
			require.ErrorIs(t, err, errs.ErrTruncated)
		})
	}
}

func TestDecodeUint64_TrailingBytes(t *testing.T) {
	// Decoders must consume exactly the encoded length and ignore whatever
	// follows, so concatenated keys can be scanned sequentially.
	buf := EncodeUint64(8256)
	buf = append(buf, 0xDE, 0xAD, 0xBE, 0xEF)

	v, n, err := DecodeUint64(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(8256), v)
	require.Equal(t, 2, n)
}

func TestAppendUint64_Concatenation(t *testing.T) {
	values := []uint64{0, 63, 64, 8255, 8256, math.MaxUint64}

	var buf []byte
	for _, v := range values {
		buf = AppendUint64(buf, v)
	}

	offset := 0
	for _, want := range values {
		v, n, err := DecodeUint64(buf[offset:])
		require.NoError(t, err)
		require.Equal(t, want, v)
		offset += n
	}
	require.Equal(t, len(buf), offset)
}
