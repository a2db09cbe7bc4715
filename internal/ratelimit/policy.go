package ratelimit

import "time"

// LimitConfig caps requests to Max within a sliding Window.
type LimitConfig struct {
	Window time.Duration
	Max    int64
}

// Policy maps each scope to the limits applied to it.
type Policy struct {
	Limits map[Scope][]LimitConfig
}

// DefaultPolicy returns the limits applied when an endpoint configures none.
// Reads are route lookups and far more frequent than writes.
func DefaultPolicy() *Policy {
	return &Policy{
		Limits: map[Scope][]LimitConfig{
			ScopeGlobal: {
				{Window: time.Minute, Max: 1200},
			},
			ScopeRead: {
				{Window: time.Minute, Max: 600},
			},
			ScopeWrite: {
				{Window: time.Minute, Max: 30},
				{Window: time.Hour, Max: 300},
			},
		},
	}
}
