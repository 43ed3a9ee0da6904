package errors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusOK                    = 200
	StatusCreated               = 201
	StatusNoContent             = 204
	StatusBadRequest            = 400
	StatusNotFound              = 404
	StatusMethodNotAllowed      = 405
	StatusRequestTimeout        = 408
	StatusConflict              = 409
	StatusRequestEntityTooLarge = 413
	StatusInternalServerError   = 500
)

const (
	ErrorTypeValidation          = "VALIDATION_ERROR"
	ErrorTypeInvalidRequest      = "INVALID_REQUEST"
	ErrorTypeAlreadyExists       = "ALREADY_EXISTS"
	ErrorTypeNotFound            = "NOT_FOUND"
	ErrorTypeDatabaseError       = "DATABASE_ERROR"
	ErrorTypeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorTypeRequestTimeout      = "REQUEST_TIMEOUT"
	ErrorTypeUnknown             = "UNKNOWN_ERROR"
)

type AppError struct {
	Type    string
	Message string
	Err     error

	// Fields is only populated for ErrorTypeValidation.
	Fields []ValidationErrorResponse
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(errType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string, fields []ValidationErrorResponse) *AppError {
	appErr := NewAppError(ErrorTypeValidation, message, nil)
	appErr.Fields = fields
	return appErr
}

func NewInvalidRequestError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInvalidRequest, message, err)
}

func NewAlreadyExistsError(message string, err error) *AppError {
	return NewAppError(ErrorTypeAlreadyExists, message, err)
}

func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(ErrorTypeNotFound, message, err)
}

func NewDatabaseError(message string, err error) *AppError {
	return NewAppError(ErrorTypeDatabaseError, message, err)
}

func NewInternalServerError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInternalServerError, message, err)
}

func GetErrorType(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}

	return ErrorTypeUnknown
}

// IsAlreadyExists reports whether err is the benign duplicate outcome of a store insert.
func IsAlreadyExists(err error) bool {
	return GetErrorType(err) == ErrorTypeAlreadyExists
}

func IsValidation(err error) bool {
	return GetErrorType(err) == ErrorTypeValidation
}

// ValidationFields returns the per-field failures carried by a validation error, or nil.
func ValidationFields(err error) []ValidationErrorResponse {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type == ErrorTypeValidation {
		return appErr.Fields
	}
	return nil
}

// IsDuplicateKeyError recognises unique-constraint violations from the SQL drivers
// by message, since postgres and sqlite surface them differently.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "sqlstate 23505")
}
