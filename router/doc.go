// Package router implements the rule-matching collaborator consumed by
// package dispatch: a route table of path templates and method sets
// that resolves a request to a registered endpoint.
//
// # Registering rules
//
//	rt := router.NewRouter()
//	rt.Handle("/widgets/{id:int}", getWidget).Methods(http.MethodGet)
//	rt.Handle("/widgets", listWidgets).Methods(http.MethodGet, http.MethodPost)
//
// Rules are built fluently; construction errors are deferred to the
// first Match call and inspectable via Rule.GetError.
//
// # Path templates
//
// Templates are segment-wise: a segment is either a literal or a
// variable enclosed in curly braces, optionally constrained by a named
// macro or a raw regular expression:
//
//	/users/{id:uuid}
//	/articles/{page:int}
//	/posts/{slug:slug}
//	/files/{name:[a-z]+\.txt}
//
// Available macros: uuid, int, float, slug, alpha, alphanum, date, hex.
// An unknown name after the colon is treated as a raw regular
// expression.
//
// Captured variables are delivered to the endpoint as dispatch.Params.
//
// # Matching
//
// Match parses the raw request target per RFC 3986; an unparsable
// target fails with an error wrapping dispatch.ErrInvalidTarget. Paths
// are cleaned (dot segments removed per RFC 3986 Section 5.2.4) before
// matching. Method tokens are compared case-sensitively per RFC 9110
// Section 9.1.
//
// MethodsForValidRules reports the union of method sets of all rules
// whose path would match, regardless of method. The dispatch core uses
// it to build the Allow header on 405 and preflight replies.
//
// The route table is not safe for concurrent mutation; register all
// rules before serving. Matching is read-only and safe for concurrent
// use.
package router
