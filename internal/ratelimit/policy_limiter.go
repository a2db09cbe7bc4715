package ratelimit

import (
	"context"
	"fmt"
)

// LimitExceeded describes the first limit a request went over.
type LimitExceeded struct {
	Scope  Scope
	Config LimitConfig
	Count  int64
}

// PolicyLimiter enforces a Policy against per-client counters in a Store.
type PolicyLimiter struct {
	store  Store
	policy *Policy
}

// NewPolicyLimiter creates a new policy-based rate limiter. A nil policy means DefaultPolicy.
func NewPolicyLimiter(store Store, policy *Policy) *PolicyLimiter {
	if policy == nil {
		policy = DefaultPolicy()
	}

	return &PolicyLimiter{
		store:  store,
		policy: policy,
	}
}

// Allow records the request against every limit of every scope and reports
// whether all of them still hold. Scopes missing from the policy are skipped.
func (l *PolicyLimiter) Allow(ctx context.Context, clientKey string, scopes []Scope) (bool, *LimitExceeded, error) {
	for _, scope := range scopes {
		for _, limit := range l.policy.Limits[scope] {
			key := fmt.Sprintf("%s:%s:%d", clientKey, scope, limit.Window.Milliseconds())

			count, err := l.store.Record(ctx, key, limit.Window)
			if err != nil {
				return false, nil, fmt.Errorf("record %s: %w", scope, err)
			}

			if count > limit.Max {
				return false, &LimitExceeded{Scope: scope, Config: limit, Count: count}, nil
			}
		}
	}

	return true, nil, nil
}

// Store returns the underlying rate limit store.
func (l *PolicyLimiter) Store() Store {
	return l.store
}
