package compose

import "log/slog"

// Option configures a Planner or a direct SelectLayers call.
//
// Example:
//
//	// Keep nearest and bilinear layers mixed in one pass
//	p := compose.NewPlanner(caps, compose.WithForceBilinear(false))
type Option func(*options)

// options holds the optional configuration shared by the planner stages.
type options struct {
	forceBilinear bool
	limits        Limits
	logger        *slog.Logger
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		forceBilinear: true,
		limits:        DefaultLimits(),
		logger:        nil, // package logger at call time
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// log returns the configured logger, falling back to the package logger.
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithForceBilinear controls post-selection normalization of sampler modes.
// When enabled (the default) and any admitted layer resolves to bilinear,
// every other admitted layer still on nearest is switched to bilinear so the
// shared 3D sampler is programmed with a single filter.
func WithForceBilinear(enabled bool) Option {
	return func(o *options) {
		o.forceBilinear = enabled
	}
}

// WithLimits overrides the per-pass resource maxima used to reset the
// budget. Caps.MaxInputLayers, when positive, still caps the layer count.
func WithLimits(lim Limits) Option {
	return func(o *options) {
		o.limits = lim
	}
}

// WithLogger sets a logger for this planner only.
// Without it the package logger from [Logger] is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
