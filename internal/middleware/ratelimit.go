package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tomasen/realip"
	"golang.org/x/time/rate"
)

const (
	limiterCacheSize = 4096
	limiterIdleTTL   = 10 * time.Minute
)

// RateLimited limits requests per client ip. Exceeding requests get 429.
func RateLimited(rps float64, burst int) func(next http.Handler) http.Handler {
	var mu sync.Mutex
	limiters := expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL)

	get := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		l, ok := limiters.Get(ip)
		if !ok {
			l = rate.NewLimiter(rate.Limit(rps), burst)
			limiters.Add(ip, l)
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !get(realip.FromRequest(r)).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many requests"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
