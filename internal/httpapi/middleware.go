package httpapi

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

// addrLimiter rate-limits per remote address, the same
// limiter-per-key pattern as the teacher's
// internal/relay/bandwidth.go BandwidthMeter — there keyed by user ID
// for byte throughput, here keyed by remote address for request rate.
type addrLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newAddrLimiter(rps float64, burst int) *addrLimiter {
	if burst < 1 {
		burst = 1
	}
	return &addrLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (a *addrLimiter) allow(addr string) bool {
	a.mu.Lock()
	lim, ok := a.limiters[addr]
	if !ok {
		lim = rate.NewLimiter(a.rps, a.burst)
		a.limiters[addr] = lim
	}
	a.mu.Unlock()
	return lim.Allow()
}

// withMiddleware wraps next with rate limiting and, if APIToken is
// set, bearer-token authentication.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !s.limiter.allow(host) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		if s.APIToken != "" {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			if err := validateToken(tokenStr, s.APIToken); err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
		}

		next(w, r)
	}
}

// validateToken verifies an HS256 bearer token against secret — the
// same shape as the teacher's internal/direct/server.go handoff-JWT
// check, but symmetric since the HTTP facade has no relay to hold an
// asymmetric key.
func validateToken(tokenStr, secret string) error {
	_, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	return err
}
