package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w with a streaming compressor. Close flushes the stream
// but does not close w.
//
// Parameters:
//   - w: destination of the compressed stream
//   - compressionType: codec to use; CompressionNone writes through
//
// Returns:
//   - io.WriteCloser: the compressing writer
//   - error: wraps errs.ErrInvalidOption for an unknown type
func NewWriter(w io.Writer, compressionType format.CompressionType) (io.WriteCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return nopWriteCloser{w}, nil
	case format.CompressionZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case format.CompressionS2:
		return s2.NewWriter(w), nil
	case format.CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported stream compression: %s: %w", compressionType, errs.ErrInvalidOption)
	}
}

// NewReader wraps r with the streaming decompressor matching NewWriter.
func NewReader(r io.Reader, compressionType format.CompressionType) (io.ReadCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderMaxMemory(maxDecodedSize))
		if err != nil {
			return nil, err
		}

		return dec.IOReadCloser(), nil
	case format.CompressionS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case format.CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported stream compression: %s: %w", compressionType, errs.ErrInvalidOption)
	}
}
