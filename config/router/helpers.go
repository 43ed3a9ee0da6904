package router

import (
	"net/http"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	apperrors "github.com/Orbtrix-Space/Orbtrix-website/pkg/errors"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
	}
}

func CreatedResult(id, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusCreated,
		ID:         id,
		Message:    message,
	}
}

// ListResult answers 200 with items as the whole body.
func ListResult(items any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Raw:        items,
	}
}

func BadRequestResult(message string, errors any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Errors:     errors,
		Message:    message,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func ErrorResult(statusCode int, message string, errors any) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Errors:     errors,
		Message:    message,
	}
}

// FailureResult maps a service error to a response. Validation failures keep
// their field list under validationMessage; any fault at or above 500 is
// reported as faultMessage without internal detail.
func FailureResult(err error, validationMessage, faultMessage string) *ServiceResult {
	status := apperrors.HTTPStatusCode(err)

	switch {
	case apperrors.IsValidation(err):
		return BadRequestResult(validationMessage, apperrors.ValidationFields(err))
	case status >= http.StatusInternalServerError:
		return InternalServerErrorResult(faultMessage)
	default:
		return ErrorResult(status, apperrors.GetHumanReadableMessage(err), nil)
	}
}
