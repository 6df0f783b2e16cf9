package parser

import (
	"io"
	"log/slog"
)

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different parsing options.
type Opts struct {
	// Diagnostics, if not nil, receives a one-line message for any
	// usage error, which is then not returned.
	Diagnostics io.Writer

	// Logger receives debug records for every parsing step.
	Logger *slog.Logger
}

// DefOpts returns the default parsing options.
func DefOpts() *Opts {
	return &Opts{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		if f != nil {
			f(o)
		}
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return o
}

// WithDiagnostics turns usage errors into messages written to w.
func WithDiagnostics(w io.Writer) OptFunc {
	return func(opt *Opts) {
		opt.Diagnostics = w
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) OptFunc {
	return func(opt *Opts) {
		opt.Logger = logger
	}
}
