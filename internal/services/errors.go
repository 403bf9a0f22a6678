package services

import (
	"errors"

	apperrors "github.com/alperyazir/dream-lms-sub000/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrValidationFailed = errors.New("validation failed")

	// Review specific errors
	ErrReviewNotFound           = errors.New("review not found")
	ErrReviewNotAvailable       = errors.New("detailed review not available for this submission")
	ErrActivityTypeUnsupported  = errors.New("activity type does not support detailed review")
	ErrReviewResultUnmarshaling = errors.New("stored review result is unreadable")
)

// Use shared validation errors from the errors package.
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// IsNotFound checks if err represents a "not found" condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrReviewNotFound)
}

// IsValidation checks if err represents a validation failure.
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsUnsupported checks if err represents an unsupported or unreviewable
// submission, as opposed to an internal failure.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrActivityTypeUnsupported) ||
		errors.Is(err, ErrReviewNotAvailable)
}
