package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutePattern(t *testing.T) {
	assert.Equal(t, "/v1/clients/scores/:id", routePattern("/v1/clients/scores/4417"))
	assert.Equal(t, "/v1/cron/run/crm-snapshot", routePattern("/v1/cron/run/crm-snapshot"))
	assert.Equal(t, "/healthcheck", routePattern("/healthcheck"))
}

func TestCors(t *testing.T) {
	called := false
	handler := Cors([]string{"http://localhost:3000"})(okHandler(&called))

	t.Run("preflight de origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/clients/scores", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.False(t, called)
	})

	t.Run("origem desconhecida não recebe headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/clients/scores", nil)
		req.Header.Set("Origin", "https://outro.site")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.True(t, called)
	})
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	handler := LogPanicMiddleware()(LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
