package middlewares

import (
	"net/http"
	"patient-viewer-service/internal/app/services/shared/viewstate"
	"patient-viewer-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// ViewerSession attaches the caller's viewer session, creating one and
// setting the cookie when the request carries none or an expired one.
func (m *Middlewares) ViewerSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(constvars.ViewerSessionCookieName); err == nil {
			sessionID = cookie.Value
		}

		session, created := m.SessionStore.GetOrCreate(sessionID)
		if created {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Info("Middlewares.ViewerSession issued session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, session.ID),
			)
			http.SetCookie(w, &http.Cookie{
				Name:     constvars.ViewerSessionCookieName,
				Value:    session.ID,
				Path:     "/",
				MaxAge:   m.InternalConfig.App.SessionTTLInMinutes * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(viewstate.WithSession(r.Context(), session)))
	})
}
