package router

import (
	"context"

	"github.com/averen/relay/dispatch"
)

// Router is a route table of Rules. It implements the dispatch.Router
// contract: Match resolves a request to a RuleMatch, and
// MethodsForValidRules enumerates the methods registered for a path.
//
// Register all rules before serving; matching is read-only.
type Router struct {
	rules      []*Rule
	namedRules map[string]*Rule
}

// NewRouter returns an empty route table.
func NewRouter() *Router {
	return &Router{
		namedRules: make(map[string]*Rule),
	}
}

// NewRule creates an empty rule for configuration.
func (rt *Router) NewRule() *Rule {
	rule := &Rule{namedRules: rt.namedRules}
	rt.rules = append(rt.rules, rule)
	return rule
}

// Handle registers a rule for the given path template and endpoint.
func (rt *Router) Handle(path string, ep dispatch.Endpoint) *Rule {
	rule := rt.NewRule().Endpoint(ep)
	rule.tpl, rule.err = parseTemplate(path)
	return rule
}

// HandleFunc registers a rule for the given path template and endpoint
// function.
func (rt *Router) HandleFunc(path string, f func(ctx context.Context, req dispatch.Request, params dispatch.Params) (dispatch.Reply, error)) *Rule {
	return rt.Handle(path, dispatch.EndpointFunc(f))
}

// Get returns the rule registered with the given name, if any.
func (rt *Router) Get(name string) *Rule {
	return rt.namedRules[name]
}

// Rules returns all registered rules in registration order.
func (rt *Router) Rules() []*Rule {
	return rt.rules
}

// Match resolves the request against the route table. It returns the
// match on success, (nil, nil) when no rule matches, or an error
// wrapping dispatch.ErrInvalidTarget when the request target cannot be
// parsed.
func (rt *Router) Match(req dispatch.Request) (*dispatch.RuleMatch, error) {
	path, err := targetPath(req.URI)
	if err != nil {
		return nil, err
	}

	for _, rule := range rt.rules {
		if rule.err != nil || rule.endpoint == nil {
			continue
		}
		params, ok := rule.matchPath(path)
		if !ok || !rule.allowsMethod(req.Method) {
			continue
		}
		return &dispatch.RuleMatch{
			Endpoint: rule.endpoint,
			Params:   params,
			Route:    rule.label(),
		}, nil
	}

	return nil, nil
}

// MethodsForValidRules reports the union of the method sets of all
// rules whose path matches the request's path, regardless of method.
// The result is deduplicated, case-preserving, in registration order.
// Empty when the path is unknown or the target cannot be parsed.
func (rt *Router) MethodsForValidRules(req dispatch.Request) []string {
	path, err := targetPath(req.URI)
	if err != nil {
		return nil
	}

	var methods []string
	seen := make(map[string]struct{})
	for _, rule := range rt.rules {
		if rule.err != nil {
			continue
		}
		if _, ok := rule.matchPath(path); !ok {
			continue
		}
		for _, m := range rule.methods {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			methods = append(methods, m)
		}
	}
	return methods
}
