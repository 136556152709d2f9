package memocache

import (
	"github.com/bjoernbethge/memocache/eviction"
	"github.com/bjoernbethge/memocache/expiration"
	"github.com/bjoernbethge/memocache/metrics"
)

// Option customizes a cache at construction time. There is no runtime
// reconfiguration; an Option not consulted by a constructor is ignored.
type Option func(*config)

type config struct {
	metrics  metrics.Metrics
	policy   eviction.PolicyType
	strategy expiration.Strategy
}

func newConfig(opts ...Option) config {
	cfg := config{
		metrics: metrics.Noop{},
		policy:  eviction.LRU,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMetrics wires a metrics sink into NewTTLCache. The default is a
// no-op sink. LRUCache keeps its own counters and does not consult this
// option.
func WithMetrics(m metrics.Metrics) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.metrics = m
		}
	}
}

// WithExpirationStrategy replaces NewTTLCache's default expiry rule
// (expiration.AfterWrite over the constructed TTL) with another
// strategy, typically expiration.AfterAccess for a sliding TTL.
// LRUCache entries never expire and do not consult this option.
func WithExpirationStrategy(s expiration.Strategy) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.strategy = s
		}
	}
}

// WithEvictionPolicy selects the eviction policy for NewLRUCache
// (default eviction.LRU). NewTTLCache does not consult this option: its
// oldest-write eviction order is part of its contract.
func WithEvictionPolicy(t eviction.PolicyType) Option {
	return func(cfg *config) {
		if t != "" {
			cfg.policy = t
		}
	}
}
