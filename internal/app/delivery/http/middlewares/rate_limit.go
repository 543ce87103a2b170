package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
)

const defaultMaxRequestsPerSecond = 20

// RateLimit limits requests per client IP per second. The client IP is the
// connection address; forwarding headers count only when they come from a
// trusted proxy.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequestsPerSecond
	}

	keyFunc := httprate.KeyByIP
	if trusted := m.InternalConfig.App.TrustedProxies; len(trusted) > 0 {
		keyFunc = func(r *http.Request) (string, error) {
			return utils.GetClientIP(r, trusted), nil
		}
	}

	return httprate.Limit(
		maxRequests,
		time.Second,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
