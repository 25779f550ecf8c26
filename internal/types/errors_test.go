package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewPetError() {
	// Setup
	code := ErrNotUnlocked
	message := "pet not unlocked"

	// Execute
	err := NewPetError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrDatabaseError
	message := "failed to save pet state"
	underlying := errors.New("connection failed")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *PetError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewPetError(ErrInsufficientGems, "not enough gems"),
			expected: "INSUFFICIENT_GEMS: not enough gems",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrDatabaseError, "failed to save pet state", errors.New("connection failed")),
			expected: "DATABASE_ERROR: failed to save pet state (connection failed)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorTestSuite) TestIsPetError() {
	petErr := NewPetError(ErrAlreadyUnlocked, "pet already unlocked")
	plainErr := errors.New("plain error")

	s.True(IsPetError(petErr, ErrAlreadyUnlocked), "Should match the code")
	s.False(IsPetError(petErr, ErrNotUnlocked), "Should not match a different code")
	s.False(IsPetError(plainErr, ErrAlreadyUnlocked), "Plain errors are not pet errors")
	s.False(IsPetError(nil, ErrAlreadyUnlocked), "Nil is not a pet error")
}

func (s *ErrorTestSuite) TestUnwrap() {
	underlying := errors.New("disk full")
	err := WrapError(ErrDatabaseError, "failed to append transaction", underlying)

	s.Equal(underlying, err.Unwrap(), "Unwrap should return the underlying error")
	s.True(errors.Is(err, underlying), "errors.Is should see through the wrapper")
}
