package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"go.uber.org/zap"
)

const HeaderAPIKey = constvars.HeaderXAPIKey

// RequireSuperadminAPIKey guards the administrative consent routes.
func (m *Middlewares) RequireSuperadminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		apiKey := r.Header.Get(HeaderAPIKey)
		expected := m.InternalConfig.App.SuperadminAPIKey

		if apiKey == "" || expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			m.Log.Warn("Middlewares.RequireSuperadminAPIKey rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRemoteAddrKey, utils.GetClientIP(r, m.InternalConfig.App.TrustedProxies)),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
