package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		r.Get("/tasks", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("[]"))
		})
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	for _, path := range []string{"/v1/tasks/t1", "/v1/tasks/t2", "/v1/tasks"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/v1/tasks/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/v1/tasks", "200")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `http_requests_total{method="GET",path="/v1/tasks/{id}",status="404"} 2`))
	assert.True(t, strings.Contains(w.Body.String(), "http_request_duration_seconds_bucket"))
}
