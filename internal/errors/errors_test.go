package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/secquiz/secquiz/internal/mcp"
)

func TestErrorCreation(t *testing.T) {
	err := New("test", "test message", nil, http.StatusBadRequest)
	if err.Type != "test" || err.Message != "test message" || err.Code != http.StatusBadRequest {
		t.Errorf("New() created incorrect error: %v", err)
	}

	cause := fmt.Errorf("original error")
	err = New("test", "test with cause", cause, http.StatusInternalServerError)
	if err.Cause != cause {
		t.Errorf("New() did not set cause correctly: %v", err)
	}

	expected := "test: test with cause: original error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrorWrapping(t *testing.T) {
	original := fmt.Errorf("original error")
	wrapped := Wrap(original, "wrapped", "wrapped message", http.StatusBadRequest)

	if wrapped.Type != "wrapped" || wrapped.Message != "wrapped message" {
		t.Errorf("Wrap() created incorrect error: %v", wrapped)
	}
	if wrapped.Cause != original {
		t.Errorf("Wrap() did not set cause correctly")
	}

	// Wrapping an AppError keeps its type and code.
	appErr := DocumentNotFound("CCSK.pdf", nil)
	rewrapped := Wrap(appErr, "ignored", "new message", http.StatusBadRequest)

	if rewrapped.Type != ErrTypeNotFound {
		t.Errorf("Wrap() did not preserve original AppError type: got %s, want %s",
			rewrapped.Type, ErrTypeNotFound)
	}
	if rewrapped.Message != "new message" {
		t.Errorf("Wrap() did not update message: got %s", rewrapped.Message)
	}
	if rewrapped.Code != appErr.Code {
		t.Errorf("Wrap() did not preserve original status code: got %d, want %d",
			rewrapped.Code, appErr.Code)
	}
}

func TestDomainConstructors(t *testing.T) {
	tests := []struct {
		err      *AppError
		wantType string
		wantCode int
	}{
		{InvalidArg("topic"), ErrTypeInvalidArg, http.StatusBadRequest},
		{Validation("bad body", nil), ErrTypeValidation, http.StatusBadRequest},
		{ModelUnavailable(nil), ErrTypeUnavailable, http.StatusServiceUnavailable},
		{ModelTimeout(nil), ErrTypeTimeout, http.StatusGatewayTimeout},
		{DocumentNotFound("CCSK.pdf", nil), ErrTypeNotFound, http.StatusNotFound},
		{DocumentUploadFailed(nil), ErrTypeUpload, http.StatusBadGateway},
		{Internal("boom", nil), ErrTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if tt.err.Type != tt.wantType {
			t.Errorf("type = %s, want %s", tt.err.Type, tt.wantType)
		}
		if tt.err.Code != tt.wantCode {
			t.Errorf("%s: code = %d, want %d", tt.wantType, tt.err.Code, tt.wantCode)
		}
		if !Is(tt.err, tt.wantType) {
			t.Errorf("Is() failed to identify %s error", tt.wantType)
		}
	}
}

func TestGetTypeAndCode(t *testing.T) {
	if GetType(ModelTimeout(nil)) != ErrTypeTimeout {
		t.Errorf("GetType() returned incorrect type for timeout error")
	}

	stdErr := fmt.Errorf("standard error")
	if GetType(stdErr) != "unknown" {
		t.Errorf("GetType() for standard error should return 'unknown', got %s", GetType(stdErr))
	}
	if GetCode(stdErr) != http.StatusInternalServerError {
		t.Errorf("GetCode() for standard error should be 500, got %d", GetCode(stdErr))
	}
	if GetCode(nil) != http.StatusOK {
		t.Errorf("GetCode(nil) should be 200")
	}
}

func TestRPCMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{InvalidArg("amount"), mcp.CodeInvalidParams},
		{Validation("bad", nil), mcp.CodeInvalidParams},
		{DocumentNotFound("CCSK.pdf", nil), mcp.CodeNotFound},
		{ModelTimeout(nil), mcp.CodeModelTimeout},
		{ModelUnavailable(nil), mcp.CodeServiceUnavailable},
		{DocumentUploadFailed(nil), mcp.CodeUploadFailed},
		{Internal("boom", nil), mcp.CodeInternalError},
		{fmt.Errorf("plain"), mcp.CodeInternalError},
	}

	for _, tt := range tests {
		got := RPC(tt.err)
		if got.Code != tt.wantCode {
			t.Errorf("RPC(%v) code = %d, want %d", tt.err, got.Code, tt.wantCode)
		}
	}
}

// Unclassified errors must not leak their text through the RPC surface.
func TestRPCMessageHardening(t *testing.T) {
	got := RPC(fmt.Errorf("secret internal detail"))
	if got.Message != "Internal error" {
		t.Errorf("RPC() leaked internal detail: %q", got.Message)
	}
}
