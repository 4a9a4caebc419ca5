package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	e := New(CodeBadDimensions, "length and width are required")
	if got := e.Error(); got != "[BAD_DIMENSIONS] length and width are required" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Internal("catalog load", fmt.Errorf("boom"))
	if got := wrapped.Error(); got != "[INTERNAL_ERROR] catalog load: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	clientCodes := []Code{
		CodeMissingProduct, CodeBadDimensions, CodeInvalidTier, CodeInvalidMetal,
		CodeSizeBucketUnresolved, CodeNoFactorFound, CodeMissingShroudConfig, CodeUnknownProduct,
	}
	for _, code := range clientCodes {
		if got := New(code, "x").HTTPStatus(); got != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", code, got)
		}
	}
	if got := Internal("x", nil).HTTPStatus(); got != http.StatusInternalServerError {
		t.Errorf("internal: status %d, want 500", got)
	}
}

func TestCodeExtractionThroughWrapping(t *testing.T) {
	base := New(CodeNoFactorFound, "no factor found").WithDetail("metal", "copper")
	wrapped := fmt.Errorf("handling request: %w", base)

	if !IsCode(wrapped, CodeNoFactorFound) {
		t.Error("IsCode should see through fmt.Errorf wrapping")
	}
	e, ok := AsError(wrapped)
	if !ok {
		t.Fatal("AsError should see through fmt.Errorf wrapping")
	}
	if e.Details["metal"] != "copper" {
		t.Errorf("details lost through wrapping: %+v", e.Details)
	}

	if IsCode(fmt.Errorf("plain"), CodeNoFactorFound) {
		t.Error("plain errors carry no code")
	}
}
