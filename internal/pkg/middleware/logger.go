package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/internal/pkg/logger"
)

// RequestIDMiddleware adds a unique request ID to each request, reusing an
// inbound X-Request-ID when the caller supplied one.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set("X-Request-ID", requestID)
			return next(c)
		}
	}
}

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			if raw != "" {
				path = path + "?" + raw
			}

			statusCode := c.Response().Status
			fields := []logger.Field{
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.String("request_id", c.Response().Header().Get("X-Request-ID")),
			}

			switch {
			case statusCode >= 500:
				zapLogger.Error("Server error", fields...)
			case statusCode >= 400:
				zapLogger.Warn("Client error", fields...)
			default:
				zapLogger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
