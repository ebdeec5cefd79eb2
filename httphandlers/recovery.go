package httphandlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/averen/relay/httpserver"
)

// RecoveryConfig configures the recovery middleware behaviour.
type RecoveryConfig struct {
	// Logger receives one entry per recovered panic. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}

// RecoveryMiddleware returns a middleware that recovers from panics in
// downstream handlers. The dispatch core already converts panics on the
// dispatch path into 500 replies; this middleware covers panics in
// other middleware and in handlers mounted outside the dispatcher.
func RecoveryMiddleware(cfg RecoveryConfig) httpserver.MiddlewareFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					log.Error("panic in handler",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("panic", v),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
