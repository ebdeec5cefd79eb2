// Package httphandlers provides middleware for the httpserver
// transport adapter: request ID propagation, structured access
// logging, Prometheus metrics, and panic recovery.
//
// Middleware is configured through config structs with sensible
// zero-value defaults and chained via httpserver.Chain:
//
//	h := httpserver.Chain(handler,
//	    httphandlers.RecoveryMiddleware(httphandlers.RecoveryConfig{Logger: log}),
//	    httphandlers.RequestIDMiddleware(httphandlers.RequestIDConfig{}),
//	    httphandlers.AccessLogMiddleware(httphandlers.AccessLogConfig{Logger: log}),
//	)
package httphandlers
