package xlist

import (
	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
)

type Option func(opts *options)

// WithCapacity pre-sizes the node arena for n elements.
func WithCapacity(n int) Option {
	return func(opts *options) {
		opts.capacity = n
	}
}

// WithLogger sets the logger corruption reports are written to.
func WithLogger(logger hclog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithMetrics emits node.alloc and node.release counters to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(opts *options) {
		opts.metrics = m
	}
}

type options struct {
	capacity int
	logger   hclog.Logger
	metrics  *metrics.Metrics
}

func newOptions(opts ...Option) *options {
	var o = &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.logger == nil {
		o.logger = hclog.NewNullLogger()
	}
	return o
}

var (
	keyAlloc   = []string{"node", "alloc"}
	keyRelease = []string{"node", "release"}
)

func (o *options) count(key []string, n int) {
	if o.metrics != nil && n > 0 {
		o.metrics.IncrCounter(key, float32(n))
	}
}
