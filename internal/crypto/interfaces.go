// Package crypto holds the password hashing primitive used by the
// authentication service.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// verifies candidates against them.
//
// Implementations must never log or return the plaintext.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password.
	// Returns ErrPasswordTooLong when the input exceeds the algorithm limit.
	Hash(password string) (string, error)

	// Compare checks password against hash. It returns nil on match and
	// ErrPasswordMismatch otherwise.
	//
	// An empty hash is compared against an internal dummy hash so that a
	// lookup miss costs the same as a wrong password.
	Compare(hash, password string) error
}
