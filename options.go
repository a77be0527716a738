package bmssp

import "github.com/katalvlaran/bmssp/bmssplog"

// Options configures a ShortestPaths invocation.
//
// Logger — structured logger for algorithm-internal tracing. Defaults to
// bmssplog.Noop() (silent).
type Options struct {
	Logger bmssplog.Logger
}

// Option is a functional option for ShortestPaths.
type Option func(*Options)

// WithLogger injects a logger for algorithm-internal tracing. A nil logger
// panics: pass bmssplog.Noop() explicitly to silence output rather than
// omitting the option.
func WithLogger(l bmssplog.Logger) Option {
	if l == nil {
		panic("bmssp: WithLogger called with a nil Logger")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// defaultOptions returns an Options struct with every field at its
// zero-impact default.
func defaultOptions() Options {
	return Options{Logger: bmssplog.Noop()}
}
