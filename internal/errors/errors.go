package errors

import "errors"

var (
	// ErrPasswordWriteOnly is returned on any attempt to read a plaintext password.
	ErrPasswordWriteOnly = errors.New("password is write only")
	// ErrPhoneNumberNotString is returned when a phone number update receives a non-string value.
	ErrPhoneNumberNotString = errors.New("unexpected input for phone number, should be string")
	// ErrDuplicateEmail is returned when an insert collides with the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrSessionNotFound is returned when no session record exists for a session ID.
	ErrSessionNotFound = errors.New("session not found")
)
