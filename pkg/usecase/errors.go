package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Eligibility errors
	ErrUserNotEligible = errors.New("user is not eligible for yearbook generation")

	// Not found errors
	ErrYearbookNotFound = errors.New("yearbook record not found")
)

// Context keys for error values
const (
	EmailKey     = "email"
	AttemptIDKey = "attempt_id"
	ObjectKeyKey = "object_key"
)
