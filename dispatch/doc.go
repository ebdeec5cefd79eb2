// Package dispatch resolves a single inbound request against a route
// table and guarantees that exactly one terminal reply is produced for
// it, even when routing fails unexpectedly.
//
// The package implements the fallback response semantics of:
//   - RFC 9110 Section 15.5.1 (400 Bad Request)
//   - RFC 9110 Section 15.5.5 (404 Not Found)
//   - RFC 9110 Section 15.5.6 (405 Method Not Allowed, Allow header)
//   - RFC 9110 Section 9.3.7 (OPTIONS, answered with 204 No Content)
//
// # Dispatcher
//
// A Dispatcher owns one request and a Router reference. Run takes a
// continuation to invoke when routing succeeds; every failure path is
// resolved into a reply by the Dispatcher itself:
//
//	d := dispatch.New(ongoing, router)
//	d.Run(func(og dispatch.OngoingRequest, match *dispatch.RuleMatch) {
//	    // invoke the matched endpoint and reply
//	})
//
// Each Dispatcher is single-use: the surrounding transport constructs
// one per request and never shares it between goroutines.
//
// # Router contract
//
// The Router collaborator reports one of three outcomes from Match: a
// successful RuleMatch, no match (nil match, nil error), or an error
// wrapping ErrInvalidTarget when the request target never parsed. After
// a no-match outcome, MethodsForValidRules reports which methods would
// have matched the same path; the Dispatcher turns that set into the
// Allow header of a 405 (or 204 for OPTIONS preflight) reply.
//
// # Logging
//
// Diagnostics go to an injected zap logger (WithLogger); the default is
// a no-op logger. A logging failure never interrupts reply delivery.
package dispatch
