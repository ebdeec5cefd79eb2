package dispatch

import (
	"context"
	"errors"
)

// ErrInvalidTarget is returned (possibly wrapped) by Router.Match when
// the request target cannot be parsed. Triggers 400 Bad Request per
// RFC 9110 Section 15.5.1.
var ErrInvalidTarget = errors.New("invalid request target")

// Params holds path variables captured during route matching.
type Params map[string]string

// Get returns the value of a captured variable, or "" if absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Endpoint is the business-logic handler bound to a route rule. The
// Dispatcher never invokes it; it forwards the matched endpoint to the
// continuation untouched.
type Endpoint interface {
	Invoke(ctx context.Context, req Request, params Params) (Reply, error)
}

// EndpointFunc adapts a function to the Endpoint interface.
type EndpointFunc func(ctx context.Context, req Request, params Params) (Reply, error)

// Invoke implements the Endpoint interface.
func (f EndpointFunc) Invoke(ctx context.Context, req Request, params Params) (Reply, error) {
	return f(ctx, req, params)
}

// RuleMatch pairs a matched endpoint with its routing metadata. It is
// produced by a Router on success and forwarded opaquely to the
// continuation.
type RuleMatch struct {
	// Endpoint is the handler registered on the matched rule.
	Endpoint Endpoint

	// Params are the path variables captured while matching.
	Params Params

	// Route identifies the matched rule (its name, or its path
	// template when unnamed). Informational only.
	Route string
}

// Router is the rule-matching collaborator consumed by the Dispatcher.
//
// Match and MethodsForValidRules must be safe for concurrent use once
// the route table is built: the surrounding system runs one Dispatcher
// per request against a shared Router.
type Router interface {
	// Match resolves the request against the route table. It returns
	// the match on success, (nil, nil) when no rule matches, or an
	// error wrapping ErrInvalidTarget when the request target never
	// parsed. The two failure outcomes are mutually exclusive by
	// construction.
	Match(req Request) (*RuleMatch, error)

	// MethodsForValidRules reports the method tokens that would match
	// the request's path under any method. Empty when the path itself
	// is unknown. The result is deduplicated and case-preserving;
	// order is unspecified.
	MethodsForValidRules(req Request) []string
}
