package apperror

import (
	"ai-adapt-reader/config"
	"ai-adapt-reader/pkg/apperror/status"
	"ai-adapt-reader/pkg/logger"
	"fmt"

	"github.com/gofiber/fiber/v3"
)

// ErrorResponse is the standardized HTTP error payload
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

// FiberSuccessMessage is the standardized HTTP success payload
type FiberSuccessMessage struct {
	Success    bool               `json:"success"`
	Code       status.SuccessCode `json:"code"`
	Message    string             `json:"message"`
	TrackingID string             `json:"tracking_id,omitempty"`
	Result     any                `json:"result"`
}

// WriteError logs a structured warning and returns a standardized JSON error
func WriteError(module config.Module, c fiber.Ctx, httpStatus int, code string, message string) error {
	logger.WithFields(map[string]interface{}{
		"module":        module,
		"status_code":   httpStatus,
		"error_code":    code,
		"error_message": message,
		"http_method":   c.Method(),
		"path":          c.Path(),
		"url":           c.OriginalURL(),
		"ip":            c.IP(),
	}).Warnf("http error")

	return c.Status(httpStatus).JSON(ErrorResponse{
		Success:   false,
		Error:     message,
		ErrorCode: code,
	})
}

// Shorthands for common error responses
func BadRequest(module config.Module, c fiber.Ctx, code status.ErrorCode, message string) error {
	errorCode := fmt.Sprintf("AI-%d", code)
	return WriteError(module, c, fiber.StatusBadRequest, errorCode, message)
}

// InternalError writes a structured warning and returns a standardized JSON error
func InternalError(module config.Module, c fiber.Ctx, err error) error {
	errorCode := fmt.Sprintf("AI-%d", status.ErrorCodeInternal)
	return WriteError(module, c, fiber.StatusInternalServerError, errorCode, err.Error())
}

// Upstream writes an error response preserving the HTTP status the external
// provider returned, so callers can distinguish quota/auth/server failures.
func Upstream(module config.Module, c fiber.Ctx, httpStatus int, code status.ErrorCode, message string) error {
	if httpStatus < 400 || httpStatus > 599 {
		httpStatus = fiber.StatusBadGateway
	}
	errorCode := fmt.Sprintf("AI-%d", code)
	return WriteError(module, c, httpStatus, errorCode, message)
}

// BadGateway reports a well-formed provider response that failed our shape checks.
func BadGateway(module config.Module, c fiber.Ctx, code status.ErrorCode, message string) error {
	errorCode := fmt.Sprintf("AI-%d", code)
	return WriteError(module, c, fiber.StatusBadGateway, errorCode, message)
}

// Success writes a standardized JSON success response
func Success(module config.Module, c fiber.Ctx, response FiberSuccessMessage) error {
	response.Success = true
	return c.Status(fiber.StatusOK).JSON(response)
}
