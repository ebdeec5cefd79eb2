package dispatch

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Dispatcher translates one (Request, Router) pair into exactly one of:
// a continuation invocation with a successful match, or a terminal
// fallback reply. It is single-use and holds no mutable state after
// construction.
type Dispatcher struct {
	ongoing OngoingRequest
	router  Router
	log     *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for fallback diagnostics. The default
// is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// New returns a Dispatcher for a single request. The transport
// constructs one Dispatcher per request; instances are never reused.
func New(ongoing OngoingRequest, router Router, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		ongoing: ongoing,
		router:  router,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Continuation receives the ongoing request and the successful match.
// It must itself produce or forward a terminal reply.
type Continuation func(OngoingRequest, *RuleMatch)

// Run routes the held request and continues with the given continuation
// on a match. On any routing failure it replies directly: 400 for an
// unparsable target, 404 for an unknown path, 405 (or 204 for OPTIONS)
// with an Allow header for a known path with the wrong method, and 500
// for anything unexpected. After Run returns, exactly one reply has
// been produced on the request's behalf.
func (d *Dispatcher) Run(continuation Continuation) {
	tracked := &trackedRequest{OngoingRequest: d.ongoing}
	defer func() {
		if v := recover(); v != nil {
			req := d.ongoing.Request()
			d.log.Error("panic while handling request",
				zap.String("method", req.Method),
				zap.String("uri", req.URI),
				zap.Any("panic", v),
			)
			// Reply with a server error unless an inner path
			// already replied.
			if !tracked.replied {
				tracked.Reply(ForStatus(http.StatusInternalServerError))
			}
		}
	}()
	d.matchAndRun(tracked, continuation)
}

func (d *Dispatcher) matchAndRun(ongoing *trackedRequest, continuation Continuation) {
	req := ongoing.Request()

	match, err := d.router.Match(req)
	if err != nil {
		if errors.Is(err, ErrInvalidTarget) {
			d.log.Debug("bad request target",
				zap.String("method", req.Method),
				zap.String("uri", req.URI),
				zap.Error(err),
			)
			ongoing.Reply(ForStatus(http.StatusBadRequest))
			return
		}
		// The router contract only fails with ErrInvalidTarget;
		// anything else is an internal fault.
		d.log.Error("router failure",
			zap.String("method", req.Method),
			zap.String("uri", req.URI),
			zap.Error(err),
		)
		ongoing.Reply(ForStatus(http.StatusInternalServerError))
		return
	}

	if match == nil {
		methods := d.router.MethodsForValidRules(req)
		if len(methods) == 0 {
			d.log.Debug("no route",
				zap.String("method", req.Method),
				zap.String("uri", req.URI),
			)
			ongoing.Reply(ForStatus(http.StatusNotFound))
			return
		}

		status := http.StatusMethodNotAllowed
		if req.Method == http.MethodOptions {
			status = http.StatusNoContent
		} else {
			d.log.Debug("method not allowed",
				zap.String("method", req.Method),
				zap.String("uri", req.URI),
			)
		}
		ongoing.Reply(ForStatus(status).WithHeader("Allow", allowHeader(methods)))
		return
	}

	continuation(ongoing, match)
}

// allowHeader builds the Allow header value per RFC 9110 Section 10.2.1:
// the given methods deduplicated, with OPTIONS always present, sorted
// lexicographically and joined with ", ".
func allowHeader(methods []string) string {
	set := make(map[string]struct{}, len(methods)+1)
	for _, m := range methods {
		set[m] = struct{}{}
	}
	set[http.MethodOptions] = struct{}{}

	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}

// trackedRequest records whether a reply has been produced, so the
// catch-all never sends a second one.
type trackedRequest struct {
	OngoingRequest
	replied bool
}

func (t *trackedRequest) Reply(rep Reply) {
	t.replied = true
	t.OngoingRequest.Reply(rep)
}
