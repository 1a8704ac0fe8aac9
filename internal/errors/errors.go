package errors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
)

// Error type constants. Upstream failures are classified into one of these at
// the call boundary that observed them; nothing downstream inspects message
// text to route errors.
const (
	ErrTypeInvalidArg  = "invalid_argument"
	ErrTypeValidation  = "validation"
	ErrTypeNotFound    = "not_found"
	ErrTypeTimeout     = "timeout"
	ErrTypeUnavailable = "unavailable"
	ErrTypeUpload      = "upload_failed"
	ErrTypeConfig      = "config"
	ErrTypeHTTP        = "http"
	ErrTypeInternal    = "internal"
)

// AppError carries a caller-facing type and message plus internal detail that
// is logged but never serialized to clients.
type AppError struct {
	Type      string   `json:"type"`
	Message   string   `json:"message"`
	Cause     error    `json:"-"`
	Code      int      `json:"-"` // HTTP status
	Stack     []string `json:"-"`
	RequestID string   `json:"request_id,omitempty"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithStack records the non-runtime frames of the current call stack.
func (e *AppError) WithStack() *AppError {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			stack = append(stack, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	e.Stack = stack
	return e
}

func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

func New(errType, message string, cause error, code int) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Code:    code,
	}
}

// Wrap converts err into an AppError. An existing AppError keeps its type and
// code; only the message is replaced.
func Wrap(err error, errType, message string, code int) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Type:    appErr.Type,
			Message: message,
			Cause:   appErr.Cause,
			Code:    appErr.Code,
			Stack:   appErr.Stack,
		}
	}

	return New(errType, message, err, code)
}

// Is reports whether err carries the given error type tag.
func Is(err error, errType string) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}

	return false
}

func GetType(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}

	return "unknown"
}

func GetCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return http.StatusInternalServerError
}

// Err writes err as a JSON error response. Unclassified errors degrade to a
// generic 500 so internal detail never reaches the caller.
func Err(c *gin.Context, err error) {
	requestID := c.GetString("RequestID")

	var appErr *AppError
	if errors.As(err, &appErr) {
		if requestID != "" {
			appErr.RequestID = requestID
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	c.JSON(http.StatusInternalServerError, &AppError{
		Type:      ErrTypeInternal,
		Message:   "internal error",
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
	})
}
