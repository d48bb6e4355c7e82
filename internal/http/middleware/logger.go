package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const loggerLocalKey = "logger"

// Logger writes one structured access log line per request:
// request_id, method, path, status and latency_ms.
//
// Errors returned by later handlers are resolved through the app's ErrorHandler
// here, so the logged status is the one the client receives.
// The request-scoped logger is stored in locals for handlers (see LoggerFromCtx).
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqLog := log.With(zap.String("request_id", RequestIDFromCtx(c)))
		c.Locals(loggerLocalKey, reqLog)

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			reqLog.Error("request", fields...)
		case status >= fiber.StatusBadRequest:
			reqLog.Warn("request", fields...)
		default:
			reqLog.Info("request", fields...)
		}
		return nil
	}
}

// LoggerFromCtx returns the request-scoped logger set by Logger, or fallback.
func LoggerFromCtx(c *fiber.Ctx, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Locals(loggerLocalKey).(*zap.Logger); ok {
		return l
	}
	return fallback
}
