package block

import (
	"fmt"
	"iter"

	"github.com/arloliu/ordpack/codec"
	"github.com/arloliu/ordpack/compress"
	"github.com/arloliu/ordpack/errs"
	"github.com/arloliu/ordpack/format"
	"github.com/arloliu/ordpack/internal/hash"
	"github.com/arloliu/ordpack/internal/pool"
)

// Uint64Encoder accumulates unsigned integers into a key block.
//
// The encoder appends each value's order-preserving encoding to a pooled
// buffer; Finish compresses the accumulated payload, prepends the block
// header, and returns the complete block.
//
// A Uint64Encoder is not safe for concurrent use.
type Uint64Encoder struct {
	buf         *pool.ByteBuffer
	count       int
	compression format.CompressionType
}

// NewUint64Encoder creates a new unsigned key-block encoder.
//
// Parameters:
//   - compression: Compression applied to the payload by Finish
//     (format.CompressionNone disables compression)
func NewUint64Encoder(compression format.CompressionType) *Uint64Encoder {
	return &Uint64Encoder{
		buf:         pool.GetBlockBuffer(),
		compression: compression,
	}
}

// Write appends the encoding of a single value to the block payload.
//
// For bulk writes, use WriteSlice for better performance.
func (e *Uint64Encoder) Write(v uint64) {
	e.count++
	e.buf.Grow(codec.MaxSize)
	e.buf.B = codec.AppendUint64(e.buf.B, v)
}

// WriteSlice appends the encodings of all values to the block payload.
//
// The buffer is pre-grown for the worst case so the loop performs no
// reallocation checks.
func (e *Uint64Encoder) WriteSlice(values []uint64) {
	e.count += len(values)
	e.buf.Grow(len(values) * codec.MaxSize)
	for _, v := range values {
		e.buf.B = codec.AppendUint64(e.buf.B, v)
	}
}

// Len returns the number of values written so far.
func (e *Uint64Encoder) Len() int {
	return e.count
}

// Size returns the current payload size in bytes, before compression.
func (e *Uint64Encoder) Size() int {
	return e.buf.Len()
}

// Reset discards all accumulated values so the encoder can build a new block.
// The underlying buffer is retained.
func (e *Uint64Encoder) Reset() {
	e.count = 0
	e.buf.Reset()
}

// Finish compresses the payload, prepends the block header, and returns the
// completed block as a newly allocated slice owned by the caller.
//
// Finish releases the encoder's pooled buffer; the encoder must not be used
// afterwards. To build another block, create a new encoder.
func (e *Uint64Encoder) Finish() ([]byte, error) {
	defer func() {
		pool.PutBlockBuffer(e.buf)
		e.buf = nil
	}()

	return finishBlock(e.buf.Bytes(), e.count, false, e.compression)
}

// finishBlock compresses payload and assembles header + body. Shared by the
// unsigned and signed encoders.
//
// If compression does not shrink the payload it is stored uncompressed and
// the header records CompressionNone instead; LZ4 in particular emits an
// empty result for incompressible block payloads.
func finishBlock(payload []byte, count int, signed bool, compression format.CompressionType) ([]byte, error) {
	comp, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	body, err := comp.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress block payload: %w", err)
	}

	if compression != format.CompressionNone && (len(body) == 0 || len(body) >= len(payload)) {
		compression = format.CompressionNone
		body = payload
	}

	header := Header{
		Compression: compression,
		Signed:      signed,
		Count:       uint32(count), //nolint:gosec
		Checksum:    hash.Checksum(body),
	}

	out := make([]byte, 0, HeaderSize+len(body))
	out = append(out, header.Bytes()...)
	out = append(out, body...)

	return out, nil
}

// Uint64Decoder reads unsigned integers back out of a key block.
//
// The constructor validates the header, verifies the payload checksum, and
// decompresses the payload once; iteration afterwards is allocation-free.
// A Uint64Decoder is immutable after construction and safe for concurrent use.
type Uint64Decoder struct {
	header  Header
	payload []byte
}

// NewUint64Decoder parses and validates an unsigned key block.
//
// Returns:
//   - *Uint64Decoder: Decoder positioned over the decompressed payload
//   - error: Header parse errors (see ParseHeader),
//     errs.ErrBlockKindMismatch if the block holds signed encodings,
//     errs.ErrBlockChecksumMismatch if the payload is corrupted, or a
//     decompression error
func NewUint64Decoder(data []byte) (*Uint64Decoder, error) {
	header, payload, err := parseBlock(data, false)
	if err != nil {
		return nil, err
	}

	return &Uint64Decoder{header: header, payload: payload}, nil
}

// parseBlock validates the header and checksum and returns the decompressed
// payload. Shared by the unsigned and signed decoders.
func parseBlock(data []byte, signed bool) (Header, []byte, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	if header.Signed != signed {
		return Header{}, nil, errs.ErrBlockKindMismatch
	}

	body := data[HeaderSize:]
	if hash.Checksum(body) != header.Checksum {
		return Header{}, nil, errs.ErrBlockChecksumMismatch
	}

	comp, err := compress.GetCodec(header.Compression)
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := comp.Decompress(body)
	if err != nil {
		return Header{}, nil, fmt.Errorf("decompress block payload: %w", err)
	}

	return header, payload, nil
}

// Count returns the number of values the block declares.
func (d *Uint64Decoder) Count() int {
	return int(d.header.Count)
}

// Values decodes and returns all values in the block.
//
// Returns:
//   - []uint64: All decoded values, in insertion order
//   - error: A wrapped codec error if an entry is malformed, or
//     errs.ErrBlockCountMismatch if the payload length does not match the
//     declared entry count
func (d *Uint64Decoder) Values() ([]uint64, error) {
	out := make([]uint64, 0, d.header.Count)

	offset := 0
	for i := range int(d.header.Count) {
		if offset >= len(d.payload) {
			return nil, errs.ErrBlockCountMismatch
		}

		v, n, err := codec.DecodeUint64(d.payload[offset:])
		if err != nil {
			return nil, fmt.Errorf("decode block entry %d: %w", i, err)
		}

		offset += n
		out = append(out, v)
	}

	if offset != len(d.payload) {
		return nil, errs.ErrBlockCountMismatch
	}

	return out, nil
}

// All returns an iterator over the values in the block, in insertion order.
//
// The iterator stops early if an entry is malformed; use Values when the
// distinction between exhaustion and decode failure matters.
func (d *Uint64Decoder) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		offset := 0
		for range int(d.header.Count) {
			v, n, err := codec.DecodeUint64(d.payload[offset:])
			if err != nil {
				return
			}

			offset += n
			if !yield(v) {
				return
			}
		}
	}
}
