// Package block frames batches of order-preserving integer encodings into
// self-describing, checksummed blocks.
//
// The single-integer encoding in the codec package carries no length prefix or
// terminator, so callers that store many keys together are responsible for
// framing them. This package is that framing layer: a block records how many
// encoded integers it holds, whether they are signed, how the payload is
// compressed, and an xxHash64 checksum for corruption detection.
//
// # Block Layout
//
// All header fields are big-endian, matching the byte-comparable orientation
// of the key encoding itself.
//
//	Offset | Size | Field
//	-------+------+--------------------------------------------
//	0      | 2    | magic number (format.BlockMagic)
//	2      | 1    | flags: bits 0-2 compression type, bit 3 signedness
//	3      | 1    | reserved, zero
//	4      | 4    | entry count
//	8      | 8    | xxHash64 of the (possibly compressed) payload
//	16     | -    | payload: concatenated encodings, compressed per flags
//
// # Usage
//
// Encoding:
//
//	encoder := block.NewUint64Encoder(format.CompressionLZ4)
//	encoder.WriteSlice(keys)
//	data, err := encoder.Finish()
//
// Decoding:
//
//	decoder, err := block.NewUint64Decoder(data)
//	if err != nil {
//	    return err
//	}
//	for v := range decoder.All() {
//	    // ...
//	}
//
// Encoders are single-goroutine objects backed by pooled buffers; decoders
// are immutable after construction and safe for concurrent reads.
package block
