package services

import "errors"

// Error taxonomy surfaced to the HTTP layer. Persistence failures are not
// wrapped: the underlying gorm error propagates so the cause stays loggable.
var (
	// ErrInvalidCredentials covers unknown email, wrong password and wrong
	// role alike. Login deliberately does not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
	ErrValidation = errors.New("validation failed")
)
