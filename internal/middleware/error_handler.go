package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"cardledger/internal/errors"
	"cardledger/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler builds Echo's error handler. Errors that escape the
// handlers are formatted as standardized error responses, logged, and
// counted on the shared metrics recorder.
func NewHTTPErrorHandler(metrics services.MetricsRecorderInterface) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		if echoErr, ok := err.(*echo.HTTPError); ok {
			errorCode := mapHTTPStatusToErrorCode(echoErr.Code)
			message := fmt.Sprintf("%v", echoErr.Message)

			errorResponse = errors.NewErrorResponse(
				errorCode,
				traceID,
				errors.WithMessage(message),
			)
			httpStatus = echoErr.Code
		} else if validationErrs, ok := err.(validator.ValidationErrors); ok {
			fieldErrors := make(map[string]string)
			for _, fieldErr := range validationErrs {
				fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
			}
			errorResponse = errors.NewValidationError(fieldErrors, traceID)
			httpStatus = http.StatusBadRequest
		} else {
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"message", errorResponse.Error.Message,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		if metrics != nil {
			metrics.IncrementCounter("api_error", map[string]string{"code": errorResponse.Error.Code})
		}

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.UserMissingIdentity
	case http.StatusNotFound:
		return errors.AccountNotFound
	case http.StatusMethodNotAllowed:
		return errors.ValidationGeneral
	case http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "money_amount":
		return "must be a non-negative amount"
	case "day_of_month":
		return "must be a day between 1 and 31"
	case "month_of_year":
		return "must be a month between 1 and 12"
	case "payment_preference":
		return "must be 'full' or 'minimum'"
	case "sort_field":
		return "must be a recognized sort field"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
