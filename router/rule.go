package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/averen/relay/dispatch"
)

// Rule matches one path template against a method set and carries the
// endpoint to invoke on a match.
type Rule struct {
	tpl        *template
	methods    []string // empty allows any method
	name       string
	endpoint   dispatch.Endpoint
	namedRules map[string]*Rule
	err        error
}

// Methods restricts the rule to the given method tokens. Tokens are
// case-sensitive per RFC 9110 Section 9.1 and stored as given.
// Calling Methods again replaces the previous set.
func (r *Rule) Methods(methods ...string) *Rule {
	if r.err != nil {
		return r
	}
	for _, m := range methods {
		if m == "" {
			r.err = fmt.Errorf("router: empty method token on rule %q", r.label())
			return r
		}
	}
	r.methods = methods
	return r
}

// Name sets the rule name, used for lookup and diagnostics.
// Returns an error state if the rule was already named.
func (r *Rule) Name(name string) *Rule {
	if r.name != "" {
		r.err = fmt.Errorf("router: rule already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.err == nil {
		r.name = name
		if r.namedRules != nil {
			r.namedRules[name] = r
		}
	}
	return r
}

// Endpoint sets the handler invoked when the rule matches.
func (r *Rule) Endpoint(ep dispatch.Endpoint) *Rule {
	if r.err == nil {
		r.endpoint = ep
	}
	return r
}

// EndpointFunc sets a handler function for the rule.
func (r *Rule) EndpointFunc(f func(ctx context.Context, req dispatch.Request, params dispatch.Params) (dispatch.Reply, error)) *Rule {
	return r.Endpoint(dispatch.EndpointFunc(f))
}

// GetName returns the rule name, if any.
func (r *Rule) GetName() string {
	return r.name
}

// GetMethods returns the method tokens the rule matches against.
// Empty means the rule matches any method.
func (r *Rule) GetMethods() []string {
	return r.methods
}

// GetPathTemplate returns the rule's path template.
func (r *Rule) GetPathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.tpl == nil {
		return "", errors.New("router: rule doesn't have a path")
	}
	return r.tpl.raw, nil
}

// GetError returns any error accumulated while building the rule.
func (r *Rule) GetError() error {
	return r.err
}

// label identifies the rule in diagnostics: its name when set,
// otherwise its path template.
func (r *Rule) label() string {
	if r.name != "" {
		return r.name
	}
	if r.tpl != nil {
		return r.tpl.raw
	}
	return "(unconfigured)"
}

// matchPath matches the already-parsed path against the rule's
// template, ignoring the method set.
func (r *Rule) matchPath(path string) (dispatch.Params, bool) {
	if r.err != nil || r.tpl == nil {
		return nil, false
	}
	return r.tpl.match(path)
}

// allowsMethod reports whether the rule accepts the given method token.
func (r *Rule) allowsMethod(method string) bool {
	if len(r.methods) == 0 {
		return true
	}
	for _, m := range r.methods {
		if m == method {
			return true
		}
	}
	return false
}
