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

// AlreadyExistsError represents a duplicate relation or a unique field conflict
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this player and game"
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

// AuthorizationError represents a denied permission check
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrLocationNotFound = &NotFoundError{Entity: "location"}
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrGameNotFound     = &NotFoundError{Entity: "game"}
	ErrRoleNotFound     = &NotFoundError{Entity: "role"}
	ErrRsvpNotFound     = &NotFoundError{Entity: "rsvp status"}
)

// Already Exists Errors
var (
	ErrUserEmailExists   = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrUsernameExists    = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrLocationExists    = &AlreadyExistsError{Entity: "location", Context: "with this name and address"}
	ErrRoleExists        = &AlreadyExistsError{Entity: "role", Context: "for this player and team"}
	ErrRsvpExists        = &AlreadyExistsError{Entity: "rsvp status", Context: "for this player and game"}
	ErrGameTeamExists    = &AlreadyExistsError{Entity: "game team", Context: "for this game"}
	ErrTeamManagerExists = &AlreadyExistsError{Entity: "team manager", Context: "for this team"}
	ErrRelationExists    = &AlreadyExistsError{Entity: "relation"}
)

// Permission Errors
var (
	ErrPermissionDenied       = &AuthorizationError{Message: "you do not have permission to perform this action"}
	ErrAuthenticationRequired = &AuthenticationError{Message: "authentication credentials were not provided"}
	ErrInvalidToken           = &AuthenticationError{Message: "invalid token"}
)

// Business Logic Errors
var (
	ErrInvalidStatus    = &ValidationError{Field: "rsvp", Message: "invalid status"}
	ErrInvalidRole      = &ValidationError{Field: "role", Message: "invalid role"}
	ErrInvalidTeamIndex = &ValidationError{Field: "team", Message: "team index is out of range"}
	ErrTooManyTeams     = &ValidationError{Field: "teams", Message: "a game can have at most two teams"}
	ErrDatetimeRequired = &ValidationError{Message: "must include at least one of the following fields: datetime, datetimes"}
	ErrLocationRequired = &ValidationError{Field: "location", Message: "location id or name is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
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

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
