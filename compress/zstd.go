package compress

// ZstdCompressor is the Zstandard codec, suited to large documents that are
// stored or shipped over slow links.
//
// The implementation is klauspost/compress/zstd unless the package is built
// with cgo and the gozstd tag, which switches to the valyala/gozstd bindings.
// Both produce standard zstd frames, so either side can read the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// maxDecodedSize caps the output of a single Decompress call.
const maxDecodedSize = 128 << 20
