package entity

import "slices"

// Role represents the type of role a user can have in the system.
// It mirrors the "role" custom claim held by the identity provider.
type Role string

const (
	// RoleCustomer indicates a regular shopper.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
