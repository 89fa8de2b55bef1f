package backup

import "github.com/rs/zerolog"

// Option configures behavior when decoding tracks.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	track, err := backup.Decode(data,
//	    backup.WithStrictParsing(),
//	    backup.WithMaxArtworkSize(10*1024*1024),
//	)
type Option func(*decodeOptions)

// decodeOptions holds configuration for decoding.
type decodeOptions struct {
	logger         zerolog.Logger
	path           string // Reported in errors, "<memory>" when empty
	strictParsing  bool   // Fail on any warning
	ignoreWarnings bool   // Suppress all warnings
	maxArtworkSize int    // Maximum picture size in bytes (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *decodeOptions {
	return &decodeOptions{
		logger:         zerolog.Nop(),
		strictParsing:  false,
		ignoreWarnings: false,
		maxArtworkSize: 0, // No limit
	}
}

func applyOptions(opts []Option) *decodeOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sends decode warnings and progress to logger.
//
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *decodeOptions) {
		o.logger = logger
	}
}

// WithPath sets the name reported in errors for in-memory data.
// Open sets it automatically.
func WithPath(path string) Option {
	return func(o *decodeOptions) {
		o.path = path
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, decoding continues past reserved block types, pictures with
// a wrong declared size and blocks that cannot be interpreted, returning
// warnings alongside the decoded track.
//
// With strict parsing enabled, any warning becomes a *StrictParsingError.
func WithStrictParsing() Option {
	return func(o *decodeOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Track.Warnings will always be empty. Warnings are still logged.
func WithIgnoreWarnings() Option {
	return func(o *decodeOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxArtworkSize sets a maximum size for embedded pictures.
//
// Pictures whose image data exceeds this size (in bytes) are dropped with
// a warning. Default is 0 (no limit).
//
// Example:
//
//	// Limit artwork to 10MB
//	track, err := backup.Decode(data,
//	    backup.WithMaxArtworkSize(10*1024*1024),
//	)
func WithMaxArtworkSize(bytes int) Option {
	return func(o *decodeOptions) {
		o.maxArtworkSize = bytes
	}
}
