package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by Compare when the password does not
	// match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong is returned by Hash for inputs longer than 72 bytes.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)
