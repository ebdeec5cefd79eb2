// Package httpserver adapts net/http to the dispatch core: every
// inbound request gets its own Dispatcher, and the matched endpoint's
// reply is written back to the http.ResponseWriter.
//
// # Handler
//
//	rt := router.NewRouter()
//	rt.Handle("/widgets/{id}", getWidget).Methods(http.MethodGet)
//
//	h := httpserver.NewHandler(rt, httpserver.WithLogger(log))
//	http.ListenAndServe(":8080", h)
//
// The handler guarantees the dispatch core's contract at the wire: the
// client always receives exactly one response, with 400/404/405/204/500
// fallbacks synthesized when no endpoint cleanly serves the request.
//
// # Server
//
// Server wraps http.Server with the handler, optional middleware, and
// optional h2c (plaintext HTTP/2 per RFC 9113 over cleartext TCP):
//
//	srv := httpserver.NewServer(httpserver.ServerConfig{
//	    Addr:    ":8080",
//	    Handler: httpserver.Chain(h, httphandlers.RecoveryMiddleware(rc)),
//	    H2C:     true,
//	})
//	srv.ListenAndServe()
package httpserver
