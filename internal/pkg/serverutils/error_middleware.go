package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrNotFound is returned by services when a lookup target does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidInput marks request payloads that pass field validation but fail
// a business rule, such as linking a record to itself.
var ErrInvalidInput = errors.New("invalid input")

// ErrorHandlerMiddleware converts errors escaping the controllers into the
// JSON failure envelope. Write-path database errors never reach this point
// raw: services roll back and rewrap them first.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(FailureResponse(fiberErr.Message))
		case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(FailureResponse("Resource not found"))
		case errors.Is(err, ErrInvalidInput):
			return ctx.Status(fiber.StatusBadRequest).JSON(FailureResponse(err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(FailureResponse(err.Error()))
		}
	}
}
