package block

import (
	"testing"

	"github.com/arloliu/ordpack/errs"
	"github.com/arloliu/ordpack/format"
	"github.com/stretchr/testify/require"
)

func TestHeader_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		header Header
	}{
		{"unsigned uncompressed", Header{Compression: format.CompressionNone, Count: 0, Checksum: 0}},
		{"signed zstd", Header{Compression: format.CompressionZstd, Signed: true, Count: 42, Checksum: 0xDEADBEEFCAFEF00D}},
		{"unsigned lz4 max count", Header{Compression: format.CompressionLZ4, Count: 1<<32 - 1, Checksum: 1}},
		{"signed s2", Header{Compression: format.CompressionS2, Signed: true, Count: 7, Checksum: 0xFFFFFFFFFFFFFFFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.header.Bytes()
			require.Len(t, data, HeaderSize)

			parsed, err := ParseHeader(data)
			require.NoError(t, err)
			require.Equal(t, tt.header, parsed)
		})
	}
}

func TestHeader_Layout(t *testing.T) {
	header := Header{
		Compression: format.CompressionZstd,
		Signed:      true,
		Count:       0x01020304,
		Checksum:    0x1122334455667788,
	}

	data := header.Bytes()
	require.Equal(t, []byte{
		0x4F, 0x50, // magic "OP"
		0x0A,       // flags: signed | zstd
		0x00,       // reserved
		0x01, 0x02, 0x03, 0x04, // count, big-endian
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, // checksum, big-endian
	}, data)
}

func TestParseHeader_Errors(t *testing.T) {
	t.Run("Short buffer", func(t *testing.T) {
		_, err := ParseHeader(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidBlockSize)
	})

	t.Run("Bad magic", func(t *testing.T) {
		data := Header{Compression: format.CompressionNone}.Bytes()
		data[1] = 0x00
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidBlockMagic)
	})

	t.Run("Reserved flag bits", func(t *testing.T) {
		data := Header{Compression: format.CompressionNone}.Bytes()
		data[2] |= 0x40
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidBlockFlag)
	})

	t.Run("Zero compression type", func(t *testing.T) {
		data := Header{Compression: format.CompressionNone}.Bytes()
		data[2] = 0x00
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidBlockFlag)
	})
}
