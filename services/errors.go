package services

import "errors"

// Business-rule failures the API layer maps onto HTTP statuses.
// Login deliberately shares one error for unknown email and wrong
// password, and cross-user meal access is indistinguishable from a
// missing meal.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrMealNotFound       = errors.New("meal not found")
)

// ValidationError reports rejected input with a message safe to show
// the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
