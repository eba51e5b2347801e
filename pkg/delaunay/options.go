package delaunay

import (
	"go.uber.org/zap"
)

const defaultEpsilon = 1e-10

type options struct {
	epsilon float64
	logger  *zap.SugaredLogger
}

// Option configures a Tetrahedralizer
type Option func(*options)

// WithEpsilon sets the tolerance, relative to the bounding box diagonal, under
// which points count as coincident and the input as flat.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("delaunay: epsilon must be positive")
	}
	return func(o *options) {
		o.epsilon = eps
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
