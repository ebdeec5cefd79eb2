package httpserver

import "net/http"

// MiddlewareFunc is a function which receives an http.Handler and
// returns another http.Handler, wrapping it with additional behavior
// such as logging or metrics.
type MiddlewareFunc func(http.Handler) http.Handler

// Chain wraps handler with the given middleware. The first middleware
// is the outermost: Chain(h, a, b) serves as a(b(h)).
func Chain(handler http.Handler, middleware ...MiddlewareFunc) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler
}
