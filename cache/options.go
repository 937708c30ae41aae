package cache

import (
	"time"

	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
)

type Option func(opts *options)

// WithCapacity bounds the number of entries. The oldest entry is evicted
// when a Set goes past it. Zero means unbounded.
func WithCapacity(n int) Option {
	return func(opts *options) {
		opts.capacity = n
	}
}

// WithTTL sets how long every entry lives. Zero means forever.
func WithTTL(ttl time.Duration) Option {
	return func(opts *options) {
		opts.ttl = ttl
	}
}

// WithCleanupInterval sets how often expired entries are swept. Zero turns
// the sweeper off; expired entries are then only hidden from Get.
func WithCleanupInterval(interval time.Duration) Option {
	return func(opts *options) {
		opts.cleanupInterval = interval
	}
}

func WithTimeProvider(fn func() time.Time) Option {
	return func(opts *options) {
		opts.timeProvider = fn
	}
}

func WithLogger(logger hclog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithMetrics emits cache.evict and cache.expire counters, along with the
// node counters of the eviction queue.
func WithMetrics(m *metrics.Metrics) Option {
	return func(opts *options) {
		opts.metrics = m
	}
}

type options struct {
	capacity        int
	ttl             time.Duration
	cleanupInterval time.Duration
	timeProvider    func() time.Time
	logger          hclog.Logger
	metrics         *metrics.Metrics
}

func newOptions(opts ...Option) *options {
	var o = &options{}
	o.timeProvider = time.Now
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.logger == nil {
		o.logger = hclog.NewNullLogger()
	}
	if o.capacity < 0 {
		o.capacity = 0
	}
	return o
}

var (
	keyEvict  = []string{"cache", "evict"}
	keyExpire = []string{"cache", "expire"}
)

func (o *options) count(key []string, n int) {
	if o.metrics != nil && n > 0 {
		o.metrics.IncrCounter(key, float32(n))
	}
}
