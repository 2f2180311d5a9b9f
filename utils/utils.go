package utils

import (
	"errors"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"blogbackend/apperrors"
)

// ErrorResponse creates a standardized error response. Unexpected server
// errors are reported to Sentry when a DSN is configured.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		response["details"] = err.Error()
		if status >= fiber.StatusInternalServerError {
			sentry.CaptureException(err)
		}
	}
	return c.Status(status).JSON(response)
}

// ValidationErrorResponse surfaces a field-level validation failure as a 400.
func ValidationErrorResponse(c *fiber.Ctx, verr *apperrors.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"fields":  verr.Fields,
	})
}

// DomainErrorResponse maps the error taxonomy onto HTTP statuses: validation
// failures to 400, permission denials to 403, missing resources to 404.
// Anything else is an unexpected server fault.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	if verr, ok := apperrors.AsValidation(err); ok {
		return ValidationErrorResponse(c, verr)
	}
	switch {
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return ErrorResponse(c, fiber.StatusForbidden, "Permission denied", nil)
	case errors.Is(err, apperrors.ErrNotFound), apperrors.IsRecordNotFound(err):
		return ErrorResponse(c, fiber.StatusNotFound, "Resource not found", nil)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", err)
}

// SuccessResponse creates a standardized success response
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// ParseUint safely parses a string to uint
func ParseUint(s string) uint {
	i, _ := strconv.ParseUint(s, 10, 32)
	return uint(i)
}

// PaginatedResponse structure for paginated results
type PaginatedResponse struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}
