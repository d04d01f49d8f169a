// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestIDHeader carries the request correlation ID.
const RequestIDHeader = "X-Request-ID"

const (
	ctxKeyRequestID = "request_id"
	ctxKeyLogger    = "logger"
)

// LoggingMiddleware handles request logging.
type LoggingMiddleware struct {
	logger zerolog.Logger
	// quiet paths are logged at debug level when they succeed.
	quiet map[string]struct{}
}

// NewLoggingMiddleware creates a new LoggingMiddleware on the global logger.
// Successful requests to quietPaths (typically probes) are logged at debug.
func NewLoggingMiddleware(quietPaths ...string) *LoggingMiddleware {
	return NewLoggingMiddlewareWithLogger(log.Logger, quietPaths...)
}

// NewLoggingMiddlewareWithLogger creates a new LoggingMiddleware with a custom logger.
func NewLoggingMiddlewareWithLogger(logger zerolog.Logger, quietPaths ...string) *LoggingMiddleware {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}
	return &LoggingMiddleware{logger: logger, quiet: quiet}
}

// RequestLogger assigns a request ID and stores a request-scoped logger in
// the context. A well-formed inbound X-Request-ID is reused.
func (m *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(ctxKeyRequestID, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Set(ctxKeyLogger, m.logger.With().Str("request_id", requestID).Logger())

		c.Next()
	}
}

// Logger returns a gin middleware that writes one access log line per request.
func (m *LoggingMiddleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		logger := m.logger
		if scoped, ok := c.Get(ctxKeyLogger); ok {
			logger = scoped.(zerolog.Logger)
		}

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			if _, quiet := m.quiet[c.Request.URL.Path]; quiet {
				event = logger.Debug()
			} else {
				event = logger.Info()
			}
		}

		// Route is the matched pattern, empty for unknown paths.
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("body_size", c.Writer.Size()).
			Msg("request completed")
	}
}

// GetRequestLogger retrieves the request-scoped logger from context, falling
// back to the global logger.
func GetRequestLogger(c *gin.Context) *zerolog.Logger {
	if scoped, exists := c.Get(ctxKeyLogger); exists {
		if logger, ok := scoped.(zerolog.Logger); ok {
			return &logger
		}
	}
	return &log.Logger
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}
