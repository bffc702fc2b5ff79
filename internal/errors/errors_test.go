package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "bunk"}
		assert.Equal(t, "bunk not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "bunk"}
		err2 := &NotFoundError{Entity: "bunk"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "bunk"}
		err2 := &NotFoundError{Entity: "camper"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrBunkNotFound, ErrBunkNotFound))
		assert.False(t, errors.Is(ErrBunkNotFound, ErrCamperNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrBunkNotFound))
		assert.False(t, IsNotFound(ErrInvalidDateRange))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "bunk log", Context: "for this bunk and date"}
		assert.Equal(t, "bunk log already exists for this bunk and date", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "bunk log"}
		assert.Equal(t, "bunk log already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "bunk log", Context: "for this bunk and date"}
		err2 := &AlreadyExistsError{Entity: "bunk log", Context: "for this bunk and date"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrBunkLogExists))
		assert.False(t, IsAlreadyExists(ErrBunkLogNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrBunkNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Assignment errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidRole)
		assert.Error(t, ErrInvalidDateRange)
		assert.Error(t, ErrAssignmentAlreadyClosed)
		assert.Error(t, ErrCamperNotInBunk)
	})

	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidStatus)
		assert.Error(t, ErrInvalidPaginationParams)
	})
}

func TestAuthenticationErrors(t *testing.T) {
	t.Run("Refresh token errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidRefreshToken)
		assert.Error(t, ErrRefreshTokenExpired)
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		err := NewAuthenticationError("token expired")
		assert.True(t, IsAuthentication(err))
		assert.False(t, IsAuthentication(ErrBunkNotFound))
	})
}
