package httphandlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/averen/relay/httpserver"
)

// AccessLogConfig configures the access log middleware behaviour.
type AccessLogConfig struct {
	// Logger receives one entry per request. Defaults to a no-op
	// logger.
	Logger *zap.Logger

	// SkipPaths lists request paths that are never logged, e.g.
	// health check endpoints.
	SkipPaths []string
}

// AccessLogMiddleware returns a middleware that logs one structured
// entry per request: method, path, status, duration, remote address
// and request ID when present. The log level follows the response
// status: error for 5xx, warn for 4xx, info otherwise.
func AccessLogMiddleware(cfg AccessLogConfig) httpserver.MiddlewareFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
			}
			if id := RequestIDFromContext(r.Context()); id != "" {
				fields = append(fields, zap.String("request_id", id))
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("request failed", fields...)
			case rec.status >= http.StatusBadRequest:
				log.Warn("request rejected", fields...)
			default:
				log.Info("request served", fields...)
			}
		})
	}
}
