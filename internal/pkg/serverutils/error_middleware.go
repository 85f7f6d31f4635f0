package serverutils

import (
	"errors"

	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler builds the fiber error handler. Application errors map to
// their HTTP status with the kind as machine-readable code; anything else is a
// logged 500 with a generic body.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok {
			if appErr.Kind == apperror.KindInternal {
				log.Error("http", appErr.Message, map[string]interface{}{
					"path":  ctx.Path(),
					"error": errString(appErr.Err),
				})
				return ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(string(apperror.KindInternal), "Terjadi kesalahan pada server"))
			}
			return ctx.Status(apperror.HTTPStatus(appErr.Kind)).
				JSON(ErrorResponse(string(appErr.Kind), appErr.Message, appErr.Details...))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse(string(apperror.KindInternal), fiberErr.Message))
		}

		log.Error("http", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(string(apperror.KindInternal), "Terjadi kesalahan pada server"))
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
