package errors

import (
	"errors"

	"github.com/secquiz/secquiz/internal/mcp"
)

// RPC converts err into a JSON-RPC error object. Explicit classifications
// (timeout, not-found, unavailable, upload) take precedence; anything
// unclassified becomes a generic internal error with no detail attached.
func RPC(err error) *mcp.Error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return &mcp.Error{Code: mcp.CodeInternalError, Message: "Internal error"}
	}

	return &mcp.Error{Code: rpcCode(appErr.Type), Message: appErr.Message}
}

func rpcCode(errType string) int {
	switch errType {
	case ErrTypeInvalidArg, ErrTypeValidation:
		return mcp.CodeInvalidParams
	case ErrTypeNotFound:
		return mcp.CodeNotFound
	case ErrTypeTimeout:
		return mcp.CodeModelTimeout
	case ErrTypeUnavailable:
		return mcp.CodeServiceUnavailable
	case ErrTypeUpload:
		return mcp.CodeUploadFailed
	default:
		return mcp.CodeInternalError
	}
}
