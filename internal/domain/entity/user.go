// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Every principal in the system is a User.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash of the password.
	NationalID   string    // National identity number captured at registration.
	DateOfBirth  time.Time // Date of birth captured at registration.
	Role         Role      // Single role held by the account.
	Active       bool      // Deactivated support accounts cannot log in.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Principal returns the identity used for authorization checks.
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}

// UserSummary is the public projection of a user embedded in other responses.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}
