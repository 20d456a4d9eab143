package encoder

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
	"github.com/arloliu/framejson/internal/options"
)

const (
	// DefaultDoublePrecision is the number of decimal digits written for floats.
	DefaultDoublePrecision = 10
	// MaxDoublePrecision is the largest accepted double precision.
	MaxDoublePrecision = 15
	// DefaultMaxDepth bounds value nesting.
	DefaultMaxDepth = 1024
)

// DefaultHandler converts a value the encoder cannot serialize into one it can.
// The result is encoded in place of the original value.
type DefaultHandler func(v any) (any, error)

// Option configures a single encode call.
type Option = options.Option[*settings]

// settings is the resolved configuration of one encode call.
type settings struct {
	ensureASCII     bool
	doublePrecision int
	encodeHTMLChars bool
	escapeSlashes   bool
	orient          format.Orient
	dateUnit        format.DateUnit
	isoDates        bool
	defaultHandler  DefaultHandler
	maxDepth        int
	maxOutputSize   int
	logger          *zap.Logger
}

func defaultSettings() *settings {
	return &settings{
		ensureASCII:     true,
		doublePrecision: DefaultDoublePrecision,
		escapeSlashes:   true,
		orient:          format.OrientColumns,
		dateUnit:        format.UnitMilliseconds,
		maxDepth:        DefaultMaxDepth,
		logger:          Logger(),
	}
}

func newSettings(opts []Option) (*settings, error) {
	s := defaultSettings()
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// WithEnsureASCII escapes every non-ASCII character as \uXXXX when enabled.
// Default is true.
func WithEnsureASCII(enabled bool) Option {
	return options.NoError(func(s *settings) {
		s.ensureASCII = enabled
	})
}

// WithDoublePrecision sets the maximum number of decimal digits written for
// floating point values. Valid range is 0 to 15, default is 10.
func WithDoublePrecision(digits int) Option {
	return options.New(func(s *settings) error {
		if digits < 0 || digits > MaxDoublePrecision {
			return fmt.Errorf("double precision %d outside 0..%d: %w", digits, MaxDoublePrecision, errs.ErrInvalidOption)
		}
		s.doublePrecision = digits

		return nil
	})
}

// WithEncodeHTMLChars escapes <, > and & when enabled. Default is false.
func WithEncodeHTMLChars(enabled bool) Option {
	return options.NoError(func(s *settings) {
		s.encodeHTMLChars = enabled
	})
}

// WithEscapeForwardSlashes writes / as \/ when enabled. Default is true.
func WithEscapeForwardSlashes(enabled bool) Option {
	return options.NoError(func(s *settings) {
		s.escapeSlashes = enabled
	})
}

// WithOrient selects how tables, series and indexes are shaped.
// Default is format.OrientColumns.
func WithOrient(orient format.Orient) Option {
	return options.New(func(s *settings) error {
		if !orient.Valid() {
			return fmt.Errorf("invalid value '%s' for option 'orient': %w", orient, errs.ErrInvalidOption)
		}
		s.orient = orient

		return nil
	})
}

// WithOrientName is WithOrient for an orientation given by name.
func WithOrientName(name string) Option {
	return options.New(func(s *settings) error {
		orient, err := format.ParseOrient(name)
		if err != nil {
			return err
		}
		s.orient = orient

		return nil
	})
}

// WithDateUnit selects the unit of epoch integers and the precision of ISO
// strings. Default is format.UnitMilliseconds.
func WithDateUnit(unit format.DateUnit) Option {
	return options.New(func(s *settings) error {
		if !unit.Valid() {
			return fmt.Errorf("invalid value '%s' for option 'date_unit': %w", unit, errs.ErrInvalidOption)
		}
		s.dateUnit = unit

		return nil
	})
}

// WithDateUnitName is WithDateUnit for a unit given by name ("s", "ms", "us", "ns").
func WithDateUnitName(name string) Option {
	return options.New(func(s *settings) error {
		unit, err := format.ParseDateUnit(name)
		if err != nil {
			return err
		}
		s.dateUnit = unit

		return nil
	})
}

// WithISODates writes datetimes as ISO-8601 strings instead of epoch integers.
func WithISODates(enabled bool) Option {
	return options.NoError(func(s *settings) {
		s.isoDates = enabled
	})
}

// WithDefaultHandler installs a handler for values no strategy can serialize.
func WithDefaultHandler(h DefaultHandler) Option {
	return options.NoError(func(s *settings) {
		s.defaultHandler = h
	})
}

// WithMaxDepth bounds the nesting depth of encoded values. Default is 1024.
func WithMaxDepth(depth int) Option {
	return options.New(func(s *settings) error {
		if depth < 1 {
			return fmt.Errorf("max depth %d must be positive: %w", depth, errs.ErrInvalidOption)
		}
		s.maxDepth = depth

		return nil
	})
}

// WithMaxOutputSize fails the encode with errs.ErrBufferOverflow once the
// document grows past limit bytes. Zero means unlimited, the default.
func WithMaxOutputSize(limit int) Option {
	return options.New(func(s *settings) error {
		if limit < 0 {
			return fmt.Errorf("max output size %d must not be negative: %w", limit, errs.ErrInvalidOption)
		}
		s.maxOutputSize = limit

		return nil
	})
}

// WithLogger sets the logger used for this encode call.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(s *settings) {
		if l != nil {
			s.logger = l
		}
	})
}

// Config is the file form of the encoder options.
type Config struct {
	EnsureASCII          bool   `yaml:"ensure_ascii"`
	DoublePrecision      int    `yaml:"double_precision"`
	EncodeHTMLChars      bool   `yaml:"encode_html_chars"`
	EscapeForwardSlashes bool   `yaml:"escape_forward_slashes"`
	Orient               string `yaml:"orient"`
	DateUnit             string `yaml:"date_unit"`
	ISODates             bool   `yaml:"iso_dates"`
	MaxDepth             int    `yaml:"max_depth"`
	MaxOutputSize        int    `yaml:"max_output_size"`
}

// DefaultConfig returns the configuration matching an encode call without options.
func DefaultConfig() Config {
	return Config{
		EnsureASCII:          true,
		DoublePrecision:      DefaultDoublePrecision,
		EscapeForwardSlashes: true,
		Orient:               format.OrientColumns.String(),
		DateUnit:             format.UnitMilliseconds.String(),
		MaxDepth:             DefaultMaxDepth,
	}
}

// LoadConfig decodes a YAML configuration. Fields missing from the document
// keep their defaults; unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode encoder config: %w", err)
	}

	if _, err := newSettings(cfg.Options()); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Options converts the configuration into encode options.
func (c Config) Options() []Option {
	return []Option{
		WithEnsureASCII(c.EnsureASCII),
		WithDoublePrecision(c.DoublePrecision),
		WithEncodeHTMLChars(c.EncodeHTMLChars),
		WithEscapeForwardSlashes(c.EscapeForwardSlashes),
		WithOrientName(c.Orient),
		WithDateUnitName(c.DateUnit),
		WithISODates(c.ISODates),
		WithMaxDepth(c.MaxDepth),
		WithMaxOutputSize(c.MaxOutputSize),
	}
}
