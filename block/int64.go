package block

import (
	"fmt"
	"iter"

	"github.com/arloliu/ordpack/codec"
	"github.com/arloliu/ordpack/errs"
	"github.com/arloliu/ordpack/format"
	"github.com/arloliu/ordpack/internal/pool"
)

// Int64Encoder accumulates signed integers into a key block.
//
// It mirrors Uint64Encoder; blocks it produces carry the signedness flag and
// can only be read back with Int64Decoder.
//
// An Int64Encoder is not safe for concurrent use.
type Int64Encoder struct {
	buf         *pool.ByteBuffer
	count       int
	compression format.CompressionType
}

// NewInt64Encoder creates a new signed key-block encoder.
//
// Parameters:
//   - compression: Compression applied to the payload by Finish
//     (format.CompressionNone disables compression)
func NewInt64Encoder(compression format.CompressionType) *Int64Encoder {
	return &Int64Encoder{
		buf:         pool.GetBlockBuffer(),
		compression: compression,
	}
}

// Write appends the encoding of a single value to the block payload.
//
// For bulk writes, use WriteSlice for better performance.
func (e *Int64Encoder) Write(v int64) {
	e.count++
	e.buf.Grow(codec.MaxSize)
	e.buf.B = codec.AppendInt64(e.buf.B, v)
}

// WriteSlice appends the encodings of all values to the block payload.
//
// The buffer is pre-grown for the worst case so the loop performs no
// reallocation checks.
func (e *Int64Encoder) WriteSlice(values []int64) {
	e.count += len(values)
	e.buf.Grow(len(values) * codec.MaxSize)
	for _, v := range values {
		e.buf.B = codec.AppendInt64(e.buf.B, v)
	}
}

// Len returns the number of values written so far.
func (e *Int64Encoder) Len() int {
	return e.count
}

// Size returns the current payload size in bytes, before compression.
func (e *Int64Encoder) Size() int {
	return e.buf.Len()
}

// Reset discards all accumulated values so the encoder can build a new block.
// The underlying buffer is retained.
func (e *Int64Encoder) Reset() {
	e.count = 0
	e.buf.Reset()
}

// Finish compresses the payload, prepends the block header, and returns the
// completed block as a newly allocated slice owned by the caller.
//
// Finish releases the encoder's pooled buffer; the encoder must not be used
// afterwards. To build another block, create a new encoder.
func (e *Int64Encoder) Finish() ([]byte, error) {
	defer func() {
		pool.PutBlockBuffer(e.buf)
		e.buf = nil
	}()

	return finishBlock(e.buf.Bytes(), e.count, true, e.compression)
}

// Int64Decoder reads signed integers back out of a key block.
//
// An Int64Decoder is immutable after construction and safe for concurrent
// use.
type Int64Decoder struct {
	header  Header
	payload []byte
}

// NewInt64Decoder parses and validates a signed key block.
//
// Returns:
//   - *Int64Decoder: Decoder positioned over the decompressed payload
//   - error: Header parse errors (see ParseHeader),
//     errs.ErrBlockKindMismatch if the block holds unsigned encodings,
//     errs.ErrBlockChecksumMismatch if the payload is corrupted, or a
//     decompression error
func NewInt64Decoder(data []byte) (*Int64Decoder, error) {
	header, payload, err := parseBlock(data, true)
	if err != nil {
		return nil, err
	}

	return &Int64Decoder{header: header, payload: payload}, nil
}

// Count returns the number of values the block declares.
func (d *Int64Decoder) Count() int {
	return int(d.header.Count)
}

// Values decodes and returns all values in the block.
//
// Returns:
//   - []int64: All decoded values, in insertion order
//   - error: A wrapped codec error if an entry is malformed, or
//     errs.ErrBlockCountMismatch if the payload length does not match the
//     declared entry count
func (d *Int64Decoder) Values() ([]int64, error) {
	out := make([]int64, 0, d.header.Count)

	offset := 0
	for i := range int(d.header.Count) {
		if offset >= len(d.payload) {
			return nil, errs.ErrBlockCountMismatch
		}

		v, n, err := codec.DecodeInt64(d.payload[offset:])
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
func (d *Int64Decoder) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		offset := 0
		for range int(d.header.Count) {
			v, n, err := codec.DecodeInt64(d.payload[offset:])
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
