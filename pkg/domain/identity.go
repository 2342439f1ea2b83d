package domain

import "github.com/google/uuid"

// Role distinguishes the kinds of authenticated callers.
type Role string

const (
	// RoleHospital marks a token issued to an approved hospital.
	RoleHospital Role = "hospital"
	// RoleAdmin marks a token issued to a platform admin.
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleHospital, RoleAdmin:
		return Role(raw), true
	default:
		return "", false
	}
}

// Identity is the authenticated caller as asserted by the transport layer.
// The subject id is interpreted according to Role (HospitalID or AdminID).
type Identity struct {
	Subject uuid.UUID
	Role    Role
}
