package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/leadrelay/relay/pkg/services"
)

// Error codes of the wire error envelope. The set is closed; clients key
// retry and re-auth behavior off these, never off message text.
const (
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "RESOURCE_NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidState   = "INVALID_STATE"
	CodeRateLimited    = "RATE_LIMITED"
	CodeRiskPaused     = "RISK_PAUSED"
	CodeSessionInvalid = "SESSION_INVALID"
	CodeInternalError  = "INTERNAL_ERROR"
)

// ErrorResponse is the uniform error envelope on both planes.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// apiError carries an HTTP status and an envelope through the handler
// chain; errorHandler serializes it.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string { return e.Message }

func newAPIError(status int, code, message string) *apiError {
	return &apiError{Status: status, Code: code, Message: message}
}

func badRequest(message string) *apiError {
	return newAPIError(http.StatusBadRequest, CodeInvalidRequest, message)
}

// mapServiceError maps service-layer errors to wire errors.
func mapServiceError(err error) *apiError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return badRequest(validErr.Error())
	}
	if errors.Is(err, services.ErrUnauthorized) {
		return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "authentication required")
	}
	if errors.Is(err, services.ErrForbidden) {
		return newAPIError(http.StatusForbidden, CodeForbidden, "access denied")
	}
	if errors.Is(err, services.ErrNotFound) {
		return newAPIError(http.StatusNotFound, CodeNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return newAPIError(http.StatusConflict, CodeInvalidState, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidState) {
		return newAPIError(http.StatusBadRequest, CodeInvalidState, "operation not valid in the current state")
	}
	if errors.Is(err, services.ErrRiskPaused) {
		return newAPIError(http.StatusServiceUnavailable, CodeRiskPaused, "execution is paused for this account")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return newAPIError(http.StatusInternalServerError, CodeInternalError, "internal server error")
}

// errorHandler serializes apiError and echo.HTTPError into the envelope.
func errorHandler() echo.HTTPErrorHandler {
	return func(c *echo.Context, err error) {
		if resp, uerr := echo.UnwrapResponse(c.Response()); uerr == nil && resp.Committed {
			return
		}

		var apiErr *apiError
		if !errors.As(err, &apiErr) {
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				msg := httpErr.Message
				if msg == "" {
					msg = http.StatusText(httpErr.Code)
				}
				apiErr = newAPIError(httpErr.Code, codeForStatus(httpErr.Code), msg)
			} else {
				slog.Error("Unhandled error", "error", err)
				apiErr = newAPIError(http.StatusInternalServerError, CodeInternalError, "internal server error")
			}
		}

		if jsonErr := c.JSON(apiErr.Status, &ErrorResponse{
			ErrorCode: apiErr.Code,
			Message:   apiErr.Message,
		}); jsonErr != nil {
			slog.Error("Failed to write error response", "error", jsonErr)
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeInvalidState
	case http.StatusTooManyRequests:
		return CodeRateLimited
	case http.StatusServiceUnavailable:
		return CodeRiskPaused
	default:
		return CodeInternalError
	}
}
