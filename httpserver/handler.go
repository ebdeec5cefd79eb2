package httpserver

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/averen/relay/dispatch"
)

// Handler serves HTTP by dispatching each request through a fresh
// dispatch.Dispatcher against the configured router.
type Handler struct {
	router dispatch.Router
	log    *zap.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for dispatch and endpoint
// diagnostics. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandler returns an http.Handler that dispatches against the given
// router.
func NewHandler(router dispatch.Router, opts ...Option) *Handler {
	h := &Handler{
		router: router,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler. It builds the transport-agnostic
// request value, runs one Dispatcher for it, and invokes the matched
// endpoint as the continuation.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := r.RequestURI
	if target == "" {
		// Client-constructed requests (tests, proxies) may carry the
		// target only in the URL.
		target = r.URL.RequestURI()
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Debug("unreadable request body",
			zap.String("method", r.Method),
			zap.String("uri", target),
			zap.Error(err),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	og := &ongoingRequest{
		w: w,
		req: dispatch.Request{
			Method: r.Method,
			URI:    target,
			Header: r.Header,
			Body:   body,
		},
		log: h.log,
	}

	d := dispatch.New(og, h.router, dispatch.WithLogger(h.log))
	d.Run(func(ongoing dispatch.OngoingRequest, match *dispatch.RuleMatch) {
		rep, err := match.Endpoint.Invoke(r.Context(), ongoing.Request(), match.Params)
		if err != nil {
			h.log.Error("endpoint failure",
				zap.String("route", match.Route),
				zap.String("method", r.Method),
				zap.String("uri", target),
				zap.Error(err),
			)
			ongoing.Reply(dispatch.ForStatus(http.StatusInternalServerError))
			return
		}
		ongoing.Reply(rep)
	})
}

// ongoingRequest implements dispatch.OngoingRequest over an
// http.ResponseWriter. It drops duplicate replies so the "exactly one
// reply" invariant holds at the wire even if a continuation misbehaves.
type ongoingRequest struct {
	w       http.ResponseWriter
	req     dispatch.Request
	log     *zap.Logger
	replied bool
}

func (o *ongoingRequest) Request() dispatch.Request {
	return o.req
}

func (o *ongoingRequest) Reply(rep dispatch.Reply) {
	if o.replied {
		o.log.Warn("duplicate reply dropped",
			zap.String("method", o.req.Method),
			zap.String("uri", o.req.URI),
			zap.Int("status", rep.Status),
		)
		return
	}
	o.replied = true

	header := o.w.Header()
	for name, values := range rep.Header {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	o.w.WriteHeader(rep.Status)
	if len(rep.Body) > 0 {
		if _, err := o.w.Write(rep.Body); err != nil {
			o.log.Debug("reply write failed",
				zap.String("method", o.req.Method),
				zap.String("uri", o.req.URI),
				zap.Error(err),
			)
		}
	}
}
