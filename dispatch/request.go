package dispatch

import "net/http"

// Request is one inbound request as seen by the dispatch core. It is an
// immutable value owned by the transport; the Dispatcher only reads
// Method and URI. Header and Body are carried through untouched for the
// matched endpoint.
type Request struct {
	// Method is the HTTP method token per RFC 9110 Section 9.
	// Method tokens are case-sensitive.
	Method string

	// URI is the raw request target, possibly invalid. The router is
	// responsible for parsing it.
	URI string

	// Header holds the request header fields, if the transport
	// provides them.
	Header http.Header

	// Body is the request payload, if any.
	Body []byte
}

// Reply is a terminal response. Once sent, the request lifecycle ends;
// exactly one Reply must be produced per request.
type Reply struct {
	Status int
	Header http.Header
	Body   []byte
}

// ForStatus returns a Reply with the given status code and no headers
// or body.
func ForStatus(status int) Reply {
	return Reply{Status: status}
}

// WithHeader returns a copy of the reply with the given header field
// set. The receiver is not modified.
func (r Reply) WithHeader(name, value string) Reply {
	h := make(http.Header, len(r.Header)+1)
	for k, vs := range r.Header {
		h[k] = append([]string(nil), vs...)
	}
	h.Set(name, value)
	r.Header = h
	return r
}

// WithBody returns a copy of the reply with the given body.
func (r Reply) WithBody(body []byte) Reply {
	r.Body = body
	return r
}

// OngoingRequest pairs a request with its reply sink. The transport
// implements it; the Dispatcher and the continuation reply through it.
type OngoingRequest interface {
	// Request returns the held request.
	Request() Request

	// Reply sends the terminal reply. It must be called exactly once
	// per request; the send itself is fire-and-forget from the
	// dispatcher's point of view.
	Reply(Reply)
}
