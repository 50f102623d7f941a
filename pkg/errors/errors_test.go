package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "rental-ops/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "duplicate"))

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if he.StatusCode != http.StatusConflict || he.Message != "duplicate" {
		t.Errorf("unexpected error: %+v", he)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not be an HTTPError")
	}
}

func TestNewBadRequest(t *testing.T) {
	err := pkgErrors.NewBadRequest("reservation %d: %s", 2, "bad end")
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.StatusCode)
	}
	if err.Error() != "reservation 2: bad end" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
