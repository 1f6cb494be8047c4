package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationWrapsSentinel(t *testing.T) {
	err := Validation("title is required")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err.Error() != "title is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("create project: %w", err)
	if !errors.Is(wrapped, ErrValidation) {
		t.Fatalf("expected wrapped error to match ErrValidation")
	}
}
