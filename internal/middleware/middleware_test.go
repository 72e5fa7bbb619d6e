package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached(t *testing.T) {
	calls := 0
	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"x"}`))
			return
		}
		_, _ = w.Write([]byte(`{"q":"` + r.URL.Query().Get("q") + `"}`))
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/categories?q=a", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"q":"a"}`, w.Body.String())
	}
	assert.Equal(t, 1, calls)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/categories?q=b", nil))
	assert.JSONEq(t, `{"q":"b"}`, w.Body.String())
	assert.Equal(t, 2, calls)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/categories?q=fail", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
	assert.Equal(t, 4, calls)
}

func TestCached_Expires(t *testing.T) {
	calls := 0
	h := Cached(10*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/styles", nil))
	time.Sleep(50 * time.Millisecond)
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/styles", nil))

	assert.Equal(t, 2, calls)
}

func TestRateLimited(t *testing.T) {
	h := RateLimited(0.001, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := func(ip string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/v1/tasks", nil)
		r.Header.Set("X-Real-Ip", ip)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	assert.Equal(t, http.StatusCreated, req("10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, req("10.0.0.1").Code)

	w := req("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())

	assert.Equal(t, http.StatusCreated, req("10.0.0.2").Code)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	out, level := logrus.StandardLogger().Out, logrus.GetLevel()
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.DebugLevel)
	defer func() {
		logrus.SetOutput(out)
		logrus.SetLevel(level)
	}()

	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	r := httptest.NewRequest(http.MethodGet, "/v1/tasks", nil)
	r.Header.Set("X-Forwarded-For", "1.2.3.4")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "ip=1.2.3.4")
	assert.Contains(t, buf.String(), "path=/v1/tasks")
}
