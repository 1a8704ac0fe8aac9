package errors

import (
	"fmt"
	"net/http"
)

// Constructors for the caller-facing failure categories. Messages are
// deliberately generic; the cause carries the detail for the logs.

func InvalidArg(param string) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("invalid arg: %s", param), nil, http.StatusBadRequest).WithStack()
}

func Validation(message string, cause error) *AppError {
	return New(ErrTypeValidation, message, cause, http.StatusBadRequest).WithStack()
}

func ModelUnavailable(cause error) *AppError {
	return New(ErrTypeUnavailable, "model service unavailable", cause, http.StatusServiceUnavailable).WithStack()
}

func ModelTimeout(cause error) *AppError {
	return New(ErrTypeTimeout, "model request timed out", cause, http.StatusGatewayTimeout).WithStack()
}

func DocumentNotFound(name string, cause error) *AppError {
	return New(ErrTypeNotFound, fmt.Sprintf("document not found: %s", name), cause, http.StatusNotFound).WithStack()
}

func DocumentUploadFailed(cause error) *AppError {
	return New(ErrTypeUpload, "document upload failed", cause, http.StatusBadGateway).WithStack()
}

func Config(message string, cause error) *AppError {
	return New(ErrTypeConfig, message, cause, http.StatusInternalServerError).WithStack()
}

func HTTP(message string, cause error) *AppError {
	return New(ErrTypeHTTP, message, cause, http.StatusInternalServerError).WithStack()
}

func Internal(message string, cause error) *AppError {
	return New(ErrTypeInternal, message, cause, http.StatusInternalServerError).WithStack()
}
