package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Setup(r, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestID_AssignsWhenMissing(t *testing.T) {
	req := require.New(t)
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	req.Equal(http.StatusOK, w.Code)
	req.NotEmpty(w.Header().Get("X-Request-ID"))
}

func TestRequestID_PropagatesCallerValue(t *testing.T) {
	req := require.New(t)
	r := newTestEngine()

	hreq := httptest.NewRequest(http.MethodGet, "/ping", nil)
	hreq.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, hreq)

	req.Equal("abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	req := require.New(t)
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))

	req.Equal(http.StatusNoContent, w.Code)
	req.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}
