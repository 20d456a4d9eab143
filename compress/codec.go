package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
)

// Compressor compresses a complete encoded document.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The returned slice is owned by the caller; data is not modified.
	// Empty input may yield nil output.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a document produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original document. It fails when data is
	// corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression of a document.
type Stats struct {
	// Algorithm identifies the codec used.
	Algorithm format.CompressionType

	// OriginalSize is the document size before compression.
	OriginalSize int64

	// CompressedSize is the document size after compression.
	CompressedSize int64

	// CompressionTimeNs is the time spent compressing.
	CompressionTimeNs int64
}

// Ratio returns compressed size / original size, or 0 for an empty document.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// Measure compresses doc with the codec registered for compressionType and
// reports its size and timing.
//
// Parameters:
//   - compressionType: codec to use
//   - doc: encoded document
//
// Returns:
//   - []byte: compressed document
//   - Stats: sizes and elapsed time
//   - error: unknown compression type or codec failure
func Measure(compressionType format.CompressionType, doc []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	start := time.Now()
	packed, err := codec.Compress(doc)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return packed, Stats{
		Algorithm:         compressionType,
		OriginalSize:      int64(len(doc)),
		CompressedSize:    int64(len(packed)),
		CompressionTimeNs: time.Since(start).Nanoseconds(),
	}, nil
}

// CreateCodec creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: None, Zstd, S2 or LZ4
//   - target: what the codec is for, used in error messages
//
// Returns:
//   - Codec: codec instance
//   - error: wraps errs.ErrInvalidOption for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s: %w", target, compressionType, errs.ErrInvalidOption)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s: %w", compressionType, errs.ErrInvalidOption)
}
