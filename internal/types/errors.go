package types

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Pet errors
	ErrPetNotFound       ErrorCode = "PET_NOT_FOUND"
	ErrNotUnlocked       ErrorCode = "NOT_UNLOCKED"
	ErrAlreadyUnlocked   ErrorCode = "ALREADY_UNLOCKED"
	ErrRequirementNotMet ErrorCode = "REQUIREMENT_NOT_MET"

	// Gem errors
	ErrInsufficientGems ErrorCode = "INSUFFICIENT_GEMS"
	ErrInvalidAmount    ErrorCode = "INVALID_AMOUNT"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
	ErrDatabaseError ErrorCode = "DATABASE_ERROR"
)

// PetError represents a domain error from the reward engine. The pet and gem
// codes are recoverable, user-actionable conditions; the system codes wrap
// infrastructure failures so callers can tell the two apart.
type PetError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *PetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *PetError) Unwrap() error {
	return e.Err
}

// NewPetError creates a new PetError
func NewPetError(code ErrorCode, message string) *PetError {
	return &PetError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a PetError
func WrapError(code ErrorCode, message string, err error) *PetError {
	return &PetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPetError checks if an error is a PetError and has a specific code
func IsPetError(err error, code ErrorCode) bool {
	var petErr *PetError
	if err == nil {
		return false
	}
	if ok := As(err, &petErr); !ok {
		return false
	}
	return petErr.Code == code
}

// As is a helper function to safely type assert an error to a PetError
func As(err error, target **PetError) bool {
	if target == nil {
		return false
	}
	if petErr, ok := err.(*PetError); ok {
		*target = petErr
		return true
	}
	return false
}
