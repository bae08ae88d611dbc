package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/manku13/Task-Manager-BackEnd/logging"
)

// LoginLimiter throttles repeated login attempts per client IP with a
// fixed window. Counters for expired windows are dropped on access.
type LoginLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	maxTries int
	attempts map[string]*attemptWindow
	now      func() time.Time
}

type attemptWindow struct {
	count int
	start time.Time
}

func NewLoginLimiter(window time.Duration, maxTries int) *LoginLimiter {
	return &LoginLimiter{
		window:   window,
		maxTries: maxTries,
		attempts: make(map[string]*attemptWindow),
		now:      time.Now,
	}
}

func (l *LoginLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	win, ok := l.attempts[key]
	if !ok || now.Sub(win.start) >= l.window {
		l.attempts[key] = &attemptWindow{count: 1, start: now}
		return true
	}

	win.count++
	return win.count <= l.maxTries
}

func (l *LoginLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.allow(ip) {
			logging.Logger.Warnf("Event ID: LOGIN_RATE_LIMITED, Description: Too many login attempts from %s", ip)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message": "Too many login attempts from this IP, please try again after a 60 second pause"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
