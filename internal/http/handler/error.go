package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"querydrills/internal/http/middleware"
	"querydrills/internal/service"
)

// badRequest converts service input errors into 400 responses; anything else is
// passed through for ErrorHandler to treat as internal.
func badRequest(err error) error {
	var inputErr *service.InputError
	if errors.As(err, &inputErr) {
		return fiber.NewError(fiber.StatusBadRequest, inputErr.Message)
	}
	return err
}

// ErrorHandler returns a Fiber global error handler writing plain-text bodies.
// Messages of *fiber.Error are sent as-is; other errors are logged and answered
// with a generic 500 so internal details never reach the client.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		msg := utils.StatusMessage(status)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			msg = fe.Message
		} else {
			middleware.LoggerFromCtx(c, log).Error("unhandled error", zap.Error(err))
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString(msg)
	}
}
