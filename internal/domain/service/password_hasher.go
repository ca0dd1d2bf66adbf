// Package service declares the ports usecases call for work done outside the database.
package service

// PasswordHasher hashes account passwords, temporary passwords and lockout secrets alike.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check is false for any mismatch or malformed hash.
	Check(password, hash string) bool
}
