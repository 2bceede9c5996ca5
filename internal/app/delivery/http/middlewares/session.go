package middlewares

import (
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/constvars"
	"net/http"

	"go.uber.org/zap"
)

// LoadSession resolves the caller's session once per request and places it
// in the request context. Anonymous requests carry a nil session.
func (m *Middlewares) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := m.SessionService.Get(r.Context(), r)
		if session == nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(models.ContextWithSession(r.Context(), session)))
	})
}

// RequireSession sends anonymous callers to the login page instead of the
// wrapped handler.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := models.SessionFromContext(r.Context())
		if !session.IsAuthenticated() {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Info("Middlewares.RequireSession redirecting anonymous caller",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			http.Redirect(w, r, constvars.PageLogin, constvars.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
