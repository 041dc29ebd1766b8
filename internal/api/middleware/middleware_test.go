package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type fakeScripter struct {
	redis.Scripter
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.counts[keys[0]]++
	cmd.SetVal(f.counts[keys[0]])
	return cmd
}

type httpObservation struct {
	method, route, status string
}

type fakeHTTPMetrics struct {
	observed []httpObservation
}

func (f *fakeHTTPMetrics) ObserveHTTP(method, route, status string, _ float64) {
	f.observed = append(f.observed, httpObservation{method, route, status})
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusCreated)
}

func TestRateLimiter_Limit(t *testing.T) {
	rdb := &fakeScripter{counts: make(map[string]int64)}
	rl := NewRateLimiter(rdb, 2, time.Minute, "test", true, logger.NewNop())
	h := rl.Middleware(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
	assert.Equal(t, int64(3), rdb.counts["test:10.0.0.1"])

	// другой клиент считается отдельно
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", nil)
	req.Header.Set("X-Forwarded-For", "192.168.1.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), rdb.counts["test:192.168.1.7"])
}

func TestRateLimiter_RedisFailure(t *testing.T) {
	rdb := &fakeScripter{counts: make(map[string]int64), err: errors.New("connection refused")}

	open := NewRateLimiter(rdb, 1, time.Minute, "", true, logger.NewNop()).Middleware(http.HandlerFunc(okHandler))
	rec := httptest.NewRecorder()
	open.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)

	closed := NewRateLimiter(rdb, 1, time.Minute, "", false, logger.NewNop()).Middleware(http.HandlerFunc(okHandler))
	rec = httptest.NewRecorder()
	closed.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware_RouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/appointments/{appointmentId}", okHandler).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/appointments/42", nil))

	require.Len(t, m.observed, 1)
	assert.Equal(t, httpObservation{http.MethodGet, "/api/appointments/{appointmentId}", "201"}, m.observed[0])
}
