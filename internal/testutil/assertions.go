package testutil

import (
	"errors"
	"testing"

	apperrors "centsible/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertValidationError checks that err is a VALIDATION_FAILED AppError
// reporting the given struct field among its field errors.
func AssertValidationError(t *testing.T, err error, field string) {
	t.Helper()

	AssertAppError(t, err, "VALIDATION_FAILED")

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return
	}
	for _, fe := range appErr.Fields {
		if fe.Field == field {
			return
		}
	}
	t.Errorf("expected a field error for %q, got %+v", field, appErr.Fields)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
