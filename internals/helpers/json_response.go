// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"securite2ie_backend/internals/helpers/apperror"
	"securite2ie_backend/internals/logging"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error"`
	ErrorCode string            `json:"error_code,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Details   any               `json:"details,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: generic error (not validation)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Error:     message,
		ErrorCode: statusToErrorCode(status),
	})
}

// StatusForKind: duplicates surface as 400 like every other client error.
func StatusForKind(k apperror.Kind) int {
	switch k {
	case apperror.KindValidation, apperror.KindConflict:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonAppError renders a tagged error. Unexpected causes are logged here and
// never sent to the client.
func JsonAppError(c *fiber.Ctx, err error) error {
	ae := apperror.As(err)
	status := StatusForKind(ae.Kind)
	if ae.Kind == apperror.KindUnexpected {
		logging.Error("request failed",
			zap.Any("request_id", c.Locals("reqid")),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Error(ae.Err),
		)
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Error:     ae.Message,
		ErrorCode: ae.Code,
		Details:   ae.Details,
	})
}

// JsonValidationError: validator.v10 failures → 400 with field → tag map
func JsonValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Requête invalide.")
	}
	fieldErrors := make(map[string]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success:   false,
		Error:     "Validation échouée.",
		ErrorCode: apperror.CodeMalformed,
		Errors:    fieldErrors,
	})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonMessage: {message, <key>: data}
func JsonMessage(c *fiber.Ctx, status int, message, key string, data any) error {
	body := fiber.Map{"message": message}
	if key != "" {
		body[key] = data
	}
	return c.Status(status).JSON(body)
}

// JsonCreated: 201 {message, <key>: data}
func JsonCreated(c *fiber.Ctx, message, key string, data any) error {
	return JsonMessage(c, fiber.StatusCreated, message, key, data)
}

// JsonOK: 200 {message, <key>: data}
func JsonOK(c *fiber.Ctx, message, key string, data any) error {
	return JsonMessage(c, fiber.StatusOK, message, key, data)
}
