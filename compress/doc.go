// Package compress provides the codecs used to compress encoded JSON documents.
//
// JSON produced from tables and arrays is highly repetitive: every record
// repeats its column keys, and numeric columns share long digit prefixes.
// A general-purpose codec applied after encoding usually shrinks such
// documents several times over.
//
// # Codecs
//
// Four codecs are available, selected by format.CompressionType:
//   - None: returns the document unchanged
//   - Zstd: best ratio, moderate speed (klauspost/compress/zstd, or valyala/gozstd
//     when built with cgo and the gozstd tag)
//   - S2: balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4)
//
// Block codecs work on whole documents:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "document")
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(doc)
//
// Stream codecs wrap an io.Writer, so a document can be compressed while it
// is written:
//
//	w, err := compress.NewWriter(out, format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
// Block and stream output are different framings; data written by NewWriter
// must be read back with NewReader.
//
// # Thread Safety
//
// All block codecs are stateless values and safe for concurrent use. Encoders
// and decoders that benefit from warm-up are pooled internally. Stream
// writers and readers belong to one goroutine.
package compress
