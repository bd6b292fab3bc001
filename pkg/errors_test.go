package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	wrapped := fmt.Errorf("handler: %w", appErr)
	got, ok := AsAppError(wrapped)
	if !ok || got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected AppError through wrapping, got %v", got)
	}

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if simple.Error() != "QUOTE_NOT_FOUND: Quote not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Fatalf("plain error must not be an AppError")
	}
}
