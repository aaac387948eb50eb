package block

import (
	"encoding/binary"

	"github.com/arloliu/ordpack/errs"
	"github.com/arloliu/ordpack/format"
)

// HeaderSize is the fixed size of a block header in bytes.
const HeaderSize = 16

// Flag byte layout within the header.
const (
	flagCompressionMask byte = 0x07 // bits 0-2: compression type
	flagSigned          byte = 0x08 // bit 3: payload holds signed encodings
)

// Header is the fixed-size descriptor at the start of every key block.
type Header struct {
	// Compression is the algorithm applied to the payload. byte offset 2 (low bits)
	Compression format.CompressionType
	// Signed reports whether the payload holds signed encodings. byte offset 2 (bit 3)
	Signed bool
	// Count is the number of encoded integers in the payload. byte offset 4-7
	Count uint32
	// Checksum is the xxHash64 of the payload as stored (after compression). byte offset 8-15
	Checksum uint64
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	binary.BigEndian.PutUint16(b[0:2], format.BlockMagic)
	flag := byte(h.Compression) & flagCompressionMask
	if h.Signed {
		flag |= flagSigned
	}
	b[2] = flag
	b[3] = 0
	binary.BigEndian.PutUint32(b[4:8], h.Count)
	binary.BigEndian.PutUint64(b[8:16], h.Checksum)

	return b
}

// ParseHeader parses a block header from the front of data.
//
// Returns:
//   - Header: Parsed header
//   - error: errs.ErrInvalidBlockSize if data is shorter than HeaderSize,
//     errs.ErrInvalidBlockMagic on a wrong magic number, or
//     errs.ErrInvalidBlockFlag if the flag byte carries an unknown
//     compression type or non-zero reserved bits
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidBlockSize
	}

	if binary.BigEndian.Uint16(data[0:2]) != format.BlockMagic {
		return Header{}, errs.ErrInvalidBlockMagic
	}

	flag := data[2]
	if flag&^(flagCompressionMask|flagSigned) != 0 {
		return Header{}, errs.ErrInvalidBlockFlag
	}

	h := Header{
		Compression: format.CompressionType(flag & flagCompressionMask),
		Signed:      flag&flagSigned != 0,
		Count:       binary.BigEndian.Uint32(data[4:8]),
		Checksum:    binary.BigEndian.Uint64(data[8:16]),
	}

	if !h.Compression.IsValid() {
		return Header{}, errs.ErrInvalidBlockFlag
	}

	return h, nil
}
