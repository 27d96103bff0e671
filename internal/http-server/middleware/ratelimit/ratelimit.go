// Package ratelimit throttles requests per client IP.
package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter *rate.Limiter
	last    time.Time
}

type Limiter struct {
	log   *slog.Logger
	rps   rate.Limit
	burst int
	now   func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

func New(log *slog.Logger, rps float64, burst int) *Limiter {
	return &Limiter{
		log:      log.With(slog.String("component", "middleware/ratelimit")),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// Allow reports whether ip may make another request now.
func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}

	v.last = now

	return v.limiter.AllowN(now, 1)
}

// Sweep forgets clients idle for longer than idle and returns how many were
// dropped.
func (l *Limiter) Sweep(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	dropped := 0

	for ip, v := range l.visitors {
		if now.Sub(v.last) > idle {
			delete(l.visitors, ip)
			dropped++
		}
	}

	return dropped
}

// Middleware passes limited requests to onLimit, or answers 429 when onLimit
// is nil.
func (l *Limiter) Middleware(onLimit http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !l.Allow(ip) {
				l.log.Warn("rate limit exceeded", slog.String("ip", ip), slog.String("path", r.URL.Path))

				if onLimit != nil {
					onLimit.ServeHTTP(w, r)
					return
				}

				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
