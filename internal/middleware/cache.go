// Package middleware ...
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheSize = 256

type cachedResponse struct {
	code   int
	header http.Header
	body   []byte
}

// Cached keeps successful responses of handler for ttl, keyed by request URI.
// Non-positive ttl disables caching.
func Cached(ttl time.Duration, handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	if ttl <= 0 {
		return handler
	}

	storage := expirable.NewLRU[string, cachedResponse](cacheSize, nil, ttl)

	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.RequestURI()

		if c, ok := storage.Get(key); ok {
			write(w, c)
			return
		}

		rec := httptest.NewRecorder()
		handler(rec, r)

		c := cachedResponse{
			code:   rec.Code,
			header: rec.Header().Clone(),
			body:   rec.Body.Bytes(),
		}
		if c.code >= http.StatusOK && c.code < http.StatusMultipleChoices {
			storage.Add(key, c)
		}

		write(w, c)
	}
}

func write(w http.ResponseWriter, c cachedResponse) {
	for k, v := range c.header {
		w.Header()[k] = v
	}
	w.WriteHeader(c.code)
	_, _ = w.Write(c.body)
}
