package middleware

import (
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// WriteRateLimit limita las escrituras (marcar/borrar) por usuario.
// Clave: identidad de los claims; sin claims cae a RemoteAddr.
type WriteRateLimit struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter

	r     rate.Limit
	burst int
}

// NewWriteRateLimit crea el limiter. Default razonable: 60 req/min con burst 30.
func NewWriteRateLimit(perMinute int, burst int) *WriteRateLimit {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 30
	}
	return &WriteRateLimit{
		limiters: make(map[string]*rate.Limiter),
		r:        rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *WriteRateLimit) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ""
		if claims, ok := GetClaims(r.Context()); ok {
			key = claims.UserID
		}
		if key == "" {
			key = remoteHost(r)
		}

		if !l.limiterFor(key).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *WriteRateLimit) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.r, l.burst)
		l.limiters[key] = lim
	}
	return lim
}

func remoteHost(r *http.Request) string {
	addr := r.RemoteAddr
	if i := strings.LastIndexByte(addr, ':'); i > 0 {
		return addr[:i]
	}
	return addr
}
