package apperr

import (
	"fmt"
	"testing"
)

func TestKindsAreDistinguishable(t *testing.T) {
	verr := Validationf("name is required")
	if !IsValidation(verr) {
		t.Error("Validationf did not produce a validation error")
	}
	if IsNotFound(verr) || IsConstraint(verr) || IsUnavailable(verr) {
		t.Error("validation error matched another kind")
	}

	wrapped := fmt.Errorf("find customer 7: %w", ErrNotFound)
	if !IsNotFound(wrapped) {
		t.Error("wrapped not-found error lost its kind")
	}
	if IsValidation(wrapped) {
		t.Error("not-found error matched validation")
	}
}

func TestValidationfMessage(t *testing.T) {
	err := Validationf("invalid status: %s", "Done")
	want := "validation failed: invalid status: Done"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
