package component

import (
	"log/slog"

	"github.com/obeliskdev/mcchat/snbt"
)

// Option configures Encode, Marshal, Decode and Unmarshal.
type Option func(*options)

type options struct {
	records  snbt.Codec
	maxDepth int
	lenient  bool
	logger   *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		records: snbt.Default,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRecordCodec replaces the codec used for the string payloads of
// pre-1.16 item and entity hover events.
func WithRecordCodec(codec snbt.Codec) Option {
	return func(o *options) {
		if codec != nil {
			o.records = codec
		}
	}
}

// WithMaxDepth makes decoding fail with ErrTooDeep once components nest
// deeper than depth. Zero, the default, means unlimited; callers decoding
// untrusted input should set a limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithLenientJSON lets Unmarshal accept comments and trailing commas.
func WithLenientJSON() Option {
	return func(o *options) {
		o.lenient = true
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
