package ratelimit

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Scope groups requests that share rate limits.
type Scope string

const (
	// ScopeGlobal applies to every request.
	ScopeGlobal Scope = "global"
	// ScopeRead applies to route lookups and other safe methods.
	ScopeRead Scope = "read"
	// ScopeWrite applies to SEO URL generation, profile creation and other unsafe methods.
	ScopeWrite Scope = "write"
)

// MetadataKey is the huma.Operation metadata key holding an EndpointConfig.
const MetadataKey = "rateLimit"

// EndpointConfig overrides rate limiting for a single operation.
//
// Limits, when set, replace the policy entirely and Scope is ignored.
// Otherwise Scope, when set, replaces method-based scope detection.
type EndpointConfig struct {
	Scope    Scope
	Limits   []LimitConfig
	Disabled bool
}

// ScopeResolver determines which scopes apply to a given request.
type ScopeResolver interface {
	Resolve(ctx huma.Context) []Scope
}

// OperationScopeResolver resolves scopes from operation metadata, falling back
// to the HTTP method: GET, HEAD and OPTIONS read, everything else writes.
type OperationScopeResolver struct{}

// NewOperationScopeResolver creates a new operation-aware scope resolver.
func NewOperationScopeResolver() *OperationScopeResolver {
	return &OperationScopeResolver{}
}

// Resolve returns the global scope plus one read or write scope.
func (r *OperationScopeResolver) Resolve(ctx huma.Context) []Scope {
	if cfg := GetEndpointConfig(ctx); cfg != nil && cfg.Scope != "" {
		return []Scope{ScopeGlobal, cfg.Scope}
	}

	return []Scope{ScopeGlobal, methodScope(ctx.Method())}
}

func methodScope(method string) Scope {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ScopeRead
	default:
		return ScopeWrite
	}
}

// GetEndpointConfig extracts the EndpointConfig from operation metadata, if present.
func GetEndpointConfig(ctx huma.Context) *EndpointConfig {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}
