package chol

import (
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultJitter is the relative diagonal jitter. The absolute value
	// added is DefaultJitter times the mean magnitude of the diagonal.
	DefaultJitter = 1e-6

	// DefaultRetryFactor scales the jitter for the single retry made when
	// the first factorization fails.
	DefaultRetryFactor = 10.0
)

const (
	panicJitterInvalid      = "chol: WithJitter: jitter must be finite, non-negative"
	panicRetryFactorInvalid = "chol: WithRetryFactor: factor must be 0 or finite and > 1"
)

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the factorization policy shared by every operation that
// factorizes a covariance.
type Options struct {
	jitter      float64
	retryFactor float64
	logger      *zap.Logger
}

// Gather applies opts over the defaults.
func Gather(opts ...Option) Options {
	o := Options{
		jitter:      DefaultJitter,
		retryFactor: DefaultRetryFactor,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) Jitter() float64 {
	return o.jitter
}

func (o Options) RetryFactor() float64 {
	return o.retryFactor
}

func (o Options) Logger() *zap.Logger {
	return o.logger
}

func WithJitter(jitter float64) Option {
	if math.IsNaN(jitter) || math.IsInf(jitter, 0) || jitter < 0 {
		panic(panicJitterInvalid)
	}
	return func(o *Options) {
		o.jitter = jitter
	}
}

// WithRetryFactor sets the jitter multiplier of the retry. Zero disables
// the retry.
func WithRetryFactor(factor float64) Option {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || (factor != 0 && factor <= 1) {
		panic(panicRetryFactorInvalid)
	}
	return func(o *Options) {
		o.retryFactor = factor
	}
}

// WithLogger routes debug events to l. A nil logger discards them.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
