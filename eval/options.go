package eval

import "errors"

// InvalidArgumentErr marks an option value outside of the recognized set.
var InvalidArgumentErr = errors.New("invalid argument")

// DefaultLambda is the log-likelihood weight applied by the information
// criteria unless overridden per call.
const DefaultLambda = 0.02

// Kind selects the flavour of the information criteria.
type Kind int

const (
	// KindLikelihood penalizes the weighted log-likelihood of the model.
	KindLikelihood Kind = iota
	// KindMSE penalizes the log of the mean squared prediction error.
	KindMSE
)

// Options are the per-call parameters of the information criteria.
type Options struct {
	Lambda float64
	Kind   Kind
}

// Option adjusts a single evaluation parameter.
type Option func(*Options)

// WithLambda overrides the log-likelihood weight.
func WithLambda(lambda float64) Option {
	return func(o *Options) {
		o.Lambda = lambda
	}
}

// WithKind selects the information criterion flavour.
func WithKind(kind Kind) Option {
	return func(o *Options) {
		o.Kind = kind
	}
}

func newOptions(opts ...Option) Options {
	options := Options{
		Lambda: DefaultLambda,
		Kind:   KindLikelihood,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
