// Command framejson reads a table as JSON and writes it back in another
// orientation, optionally compressed.
//
// Usage:
//
//	framejson [-in file] [-out file] [-input records|split|values] [-orient name]
//	          [-date-unit s|ms|us|ns] [-iso-dates] [-precision n] [-ascii]
//	          [-compression none|zstd|s2|lz4] [-config file.yaml] [-stats] [-v]
//
// Flags given on the command line override values from -config.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/arloliu/framejson"
	"github.com/arloliu/framejson/compress"
	"github.com/arloliu/framejson/encoder"
	"github.com/arloliu/framejson/format"
)

type cliOptions struct {
	in          string
	out         string
	input       string
	orient      string
	dateUnit    string
	isoDates    bool
	precision   int
	ascii       bool
	compression string
	config      string
	stats       bool
	verbose     bool
	set         map[string]bool
}

func main() {
	var o cliOptions
	flag.StringVar(&o.in, "in", "", "Input file (default stdin)")
	flag.StringVar(&o.out, "out", "", "Output file (default stdout)")
	flag.StringVar(&o.input, "input", layoutRecords, "Input layout: records, split or values")
	flag.StringVar(&o.orient, "orient", format.OrientColumns.String(), "Output orientation: split, records, index, columns or values")
	flag.StringVar(&o.dateUnit, "date-unit", format.UnitMilliseconds.String(), "Date unit: s, ms, us or ns")
	flag.BoolVar(&o.isoDates, "iso-dates", false, "Write datetimes as ISO-8601 strings")
	flag.IntVar(&o.precision, "precision", encoder.DefaultDoublePrecision, "Decimal digits written for floats (0-15)")
	flag.BoolVar(&o.ascii, "ascii", true, "Escape non-ASCII characters")
	flag.StringVar(&o.compression, "compression", "none", "Output compression: none, zstd, s2 or lz4")
	flag.StringVar(&o.config, "config", "", "YAML encoder configuration")
	flag.BoolVar(&o.stats, "stats", false, "Log compression statistics")
	flag.BoolVar(&o.verbose, "v", false, "Verbose logging")
	flag.Parse()

	o.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	logger, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	encoder.SetLogger(logger)

	if err := run(o, logger); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

func run(o cliOptions, logger *zap.Logger) error {
	opts, err := buildOptions(o)
	if err != nil {
		return err
	}
	opts = append(opts, encoder.WithLogger(logger))

	ct, err := format.ParseCompression(o.compression)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(o.in)
	if err != nil {
		return err
	}
	defer closeIn()

	df, err := readFrame(in, o.input)
	if err != nil {
		return err
	}
	rows, cols := df.Shape()
	logger.Debug("table loaded", zap.Int("rows", rows), zap.Int("columns", cols))

	out, closeOut, err := openOutput(o.out)
	if err != nil {
		return err
	}
	defer closeOut()

	if !o.stats {
		return framejson.EncodeCompressedTo(out, df, ct, opts...)
	}

	doc, err := framejson.Encode(df, opts...)
	if err != nil {
		return err
	}
	packed, stats, err := compress.Measure(ct, doc)
	if err != nil {
		return err
	}
	logger.Info("document written",
		zap.Stringer("compression", stats.Algorithm),
		zap.Int64("original_bytes", stats.OriginalSize),
		zap.Int64("compressed_bytes", stats.CompressedSize),
		zap.Float64("savings_pct", stats.SpaceSavings()),
		zap.Int64("compress_ns", stats.CompressionTimeNs))
	if !o.verbose {
		fmt.Fprintf(os.Stderr, "%s: %d -> %d bytes (%.1f%% saved)\n",
			stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())
	}

	_, err = out.Write(packed)

	return err
}

// buildOptions starts from the -config file, or the defaults, and applies
// every flag given explicitly on the command line.
func buildOptions(o cliOptions) ([]encoder.Option, error) {
	cfg := encoder.DefaultConfig()
	if o.config != "" {
		f, err := os.Open(o.config)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if cfg, err = encoder.LoadConfig(f); err != nil {
			return nil, err
		}
	}

	if o.set["orient"] {
		cfg.Orient = o.orient
	}
	if o.set["date-unit"] {
		cfg.DateUnit = o.dateUnit
	}
	if o.set["iso-dates"] {
		cfg.ISODates = o.isoDates
	}
	if o.set["precision"] {
		cfg.DoublePrecision = o.precision
	}
	if o.set["ascii"] {
		cfg.EnsureASCII = o.ascii
	}

	return cfg.Options(), nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
