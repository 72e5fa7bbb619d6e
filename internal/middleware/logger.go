package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"
)

var log = logrus.WithField("layer", "server").WithField("package", "middleware")

// Logger logs every request once it is served.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		l := log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         realip.FromRequest(r),
			"request_id": middleware.GetReqID(r.Context()),
		})

		if status >= http.StatusInternalServerError {
			l.Warn("request served")
			return
		}
		l.Debug("request served")
	})
}
