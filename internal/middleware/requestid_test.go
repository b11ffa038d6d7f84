package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	fallback := zap.NewNop()

	r := gin.New()
	r.Use(RequestID(zap.New(core)))
	r.GET("/ping", func(ctx *gin.Context) {
		assert.NotSame(t, fallback, Logger(ctx, fallback))
		ctx.Status(http.StatusNoContent)
	})

	t.Run("generates an id", func(t *testing.T) {
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/ping", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/ping", nil)
		req.Header.Set(RequestIDHeader, "exec-123")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "exec-123", w.Header().Get(RequestIDHeader))

		entries := logs.FilterField(zap.String("request_id", "exec-123")).All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, int64(http.StatusNoContent), entries[0].ContextMap()["status"])
		}
	})
}

func TestLogger_Fallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	fallback := zap.NewNop()

	assert.Same(t, fallback, Logger(ctx, fallback))
}
