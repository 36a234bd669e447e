package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpittelkow/toddler-schedule-app/internal/store"
)

type contextKey string

const (
	StoresKey contextKey = "stores"
	LoggerKey contextKey = "logger"
)

// WithStores makes the persistence providers available to every handler.
func WithStores(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(StoresKey), s)
		c.Next()
	}
}

// GetStores retrieves the persistence providers from context.
func GetStores(c *gin.Context) (*store.Stores, bool) {
	val, exists := c.Get(string(StoresKey))
	if !exists {
		return nil, false
	}
	s, ok := val.(*store.Stores)
	return s, ok
}

// WithLogger injects the logger and emits one structured line per request.
func WithLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(LoggerKey), log)

		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// GetLogger retrieves the request logger, falling back to a no-op logger so
// handlers never need a nil check.
func GetLogger(c *gin.Context) *zap.Logger {
	val, exists := c.Get(string(LoggerKey))
	if !exists {
		return zap.NewNop()
	}
	log, ok := val.(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}
	return log
}
