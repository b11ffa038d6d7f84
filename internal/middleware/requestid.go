package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"

	loggerKey = "logger"
)

// RequestID tags every request with an id (taken from X-Request-ID when the
// caller sends one) and stores a logger carrying it in the gin context.
func RequestID(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(RequestIDHeader, id)

		reqLogger := logger.With(zap.String("request_id", id))
		ctx.Set(loggerKey, reqLogger)

		start := time.Now()
		ctx.Next()

		reqLogger.Info("HTTP Request",
			zap.String("method", ctx.Request.Method),
			zap.String("uri", ctx.Request.RequestURI),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Logger returns the request scoped logger, or fallback outside of RequestID.
func Logger(ctx *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Get(loggerKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return fallback
}
