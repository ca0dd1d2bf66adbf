// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a business owner or applicant.
	RoleUser Role = "user"
	// RoleSupport handles tickets and user reports.
	RoleSupport Role = "support"
	// RoleStaff is an internal account hidden from user listings.
	RoleStaff Role = "staff"
	// RoleAdmin approves applications, sets fees and manages locations.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleSupport, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// Principal is the authenticated caller of a usecase operation.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// HasRole reports whether the principal holds any of the given roles.
func (p Principal) HasRole(roles ...Role) bool {
	return slices.Contains(roles, p.Role)
}
