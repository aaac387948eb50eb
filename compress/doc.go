// Package compress provides compression codecs for ordpack key-block
// payloads.
//
// A key-block payload is a concatenation of many order-preserving integer
// encodings. Such payloads compress well: the header bytes repeat heavily and
// nearby keys share long big-endian prefixes. Compression is applied to the
// whole payload after encoding, never to individual keys, so single-key
// comparisons stay byte-comparable while blocks at rest shrink.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, fastest, largest
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio
//
// The Zstd codec uses the cgo-backed gozstd library when cgo is available and
// falls back to the pure-Go klauspost implementation otherwise; both produce
// interoperable Zstandard frames.
//
// # Usage
//
// Codecs are obtained from the compression type stored in a block header:
//
//	codec, err := compress.GetCodec(format.CompressionLZ4)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// All codecs are stateless values and safe for concurrent use; internal
// scratch state is pooled.
package compress
