package wsdl

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures extraction strictness and diagnostics.
type Options struct {
	strictNames bool
	strictParts bool
	logger      *zerolog.Logger
}

// NewOptions returns the default options: duplicate names overwrite
// (last write wins), multi-part messages keep their first part, and
// diagnostics go to the package-global zerolog logger.
func NewOptions() Options {
	return Options{}
}

// WithStrictNames controls whether duplicate type, field, message and
// operation names fail extraction with ErrDuplicate instead of the last
// declaration winning silently.
func (o Options) WithStrictNames(value bool) Options {
	o.strictNames = value
	return o
}

// WithStrictParts controls whether a message declaring more than one part
// fails extraction with ErrUnsupported instead of keeping the first part.
func (o Options) WithStrictParts(value bool) Options {
	o.strictParts = value
	return o
}

// WithLogger routes the extractor's trace/debug diagnostics to logger.
func (o Options) WithLogger(logger zerolog.Logger) Options {
	o.logger = &logger
	return o
}

func (o Options) log() *zerolog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return &log.Logger
}
