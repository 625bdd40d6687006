package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FiberErrorHandler renders errors that escape handlers (unknown routes,
// oversized bodies, tagged errors returned instead of rendered) in the
// standard error shape.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonAppError(c, err)
}
