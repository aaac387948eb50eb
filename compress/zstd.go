package compress

// ZstdCompressor compresses key-block payloads with Zstandard. Best ratio of
// the supported codecs; suited for cold blocks and archival storage.
//
// Two interchangeable backends exist, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - non-cgo builds use klauspost/compress/zstd (pure Go)
//
// Both emit standard Zstandard frames, so blocks written by one backend are
// readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
