package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this bunk and date"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrStaffMemberNotFound             = &NotFoundError{Entity: "staff member"}
	ErrUnitNotFound                    = &NotFoundError{Entity: "unit"}
	ErrSessionNotFound                 = &NotFoundError{Entity: "session"}
	ErrCabinNotFound                   = &NotFoundError{Entity: "cabin"}
	ErrBunkNotFound                    = &NotFoundError{Entity: "bunk"}
	ErrCamperNotFound                  = &NotFoundError{Entity: "camper"}
	ErrStaffAssignmentNotFound         = &NotFoundError{Entity: "staff assignment"}
	ErrCounselorBunkAssignmentNotFound = &NotFoundError{Entity: "counselor bunk assignment"}
	ErrCamperBunkAssignmentNotFound    = &NotFoundError{Entity: "camper bunk assignment"}
	ErrBunkLogNotFound                 = &NotFoundError{Entity: "bunk log"}
	ErrCounselorLogNotFound            = &NotFoundError{Entity: "counselor log"}
	ErrSupplyOrderNotFound             = &NotFoundError{Entity: "supply order"}
)

// Already Exists Errors
var (
	ErrStaffMemberExists     = &AlreadyExistsError{Entity: "staff member", Context: "with this email"}
	ErrUnitExists            = &AlreadyExistsError{Entity: "unit", Context: "with this name"}
	ErrStaffAssignmentExists = &AlreadyExistsError{Entity: "staff assignment", Context: "for this unit, staff member and role"}
	ErrBunkLogExists         = &AlreadyExistsError{Entity: "bunk log", Context: "for this bunk and date"}
	ErrCounselorLogExists    = &AlreadyExistsError{Entity: "counselor log", Context: "for this counselor and date"}
)

// Business Logic Errors
var (
	ErrInvalidRole             = errors.New("invalid role for this operation")
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
	ErrAssignmentAlreadyClosed = errors.New("assignment is already closed")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrCamperNotInBunk         = errors.New("camper has no active assignment in this bunk")
)

// Authentication Errors
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
