package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		// Stands in for the request-ID middleware
		c.Set(ginRequestIDKey, "req-42")
		c.Next()
	})
	router.Use(GinMiddleware(zap.New(core)))
	return router, logs
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs completed request with correlation fields", func(t *testing.T) {
		router, logs := newObservedRouter(t)
		router.GET("/api/v1/contracts", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts?page=2", nil)
		router.ServeHTTP(w, req)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "HTTP Request", entries[0].Message)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

		fields := entries[0].ContextMap()
		assert.Equal(t, "req-42", fields["request_id"])
		assert.Equal(t, http.MethodGet, fields["method"])
		assert.Equal(t, "/api/v1/contracts", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, "page=2", fields["query"])
	})

	t.Run("warns on client errors and errors on server errors", func(t *testing.T) {
		router, logs := newObservedRouter(t)
		router.GET("/missing", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})
		router.GET("/broken", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	})

	t.Run("propagates request ID into the request context", func(t *testing.T) {
		router, _ := newObservedRouter(t)

		var seen string
		router.GET("/ping", func(c *gin.Context) {
			seen = GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, "req-42", seen)
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Panic recovered", entries[0].Message)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns stored request logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		l := zap.NewNop()
		c.Set(ginLoggerKey, l)
		assert.Same(t, l, GetGinLogger(c))
	})

	t.Run("falls back to no-op logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.NotNil(t, GetGinLogger(c))
	})
}
