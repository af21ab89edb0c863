package middlewares

import (
	"net/http"
	"patient-viewer-service/internal/pkg/exceptions"
	"patient-viewer-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to APP_MAX_REQUESTS per second. A
// non-positive limit disables it.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	if m.InternalConfig.App.MaxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
