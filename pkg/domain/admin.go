package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminID uniquely identifies an admin user.
// It wraps uuid.UUID to provide type safety at the domain layer.
type AdminID uuid.UUID

func (id AdminID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the id in canonical UUID form for JSON responses.
func (id AdminID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses a canonical UUID string.
func (id *AdminID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = AdminID(parsed)

	return nil
}

// Admin represents a platform operator who vets hospital applications.
type Admin struct {
	// ID is the unique identifier of the admin.
	ID AdminID `json:"id"`

	// Name is the admin's display name.
	Name string `json:"name"`
	// Email is the login email. It is unique across admins.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the login credential. Never exposed.
	PasswordHash string `json:"-"`

	// Active reports whether the account may authenticate. Deactivated admins
	// keep their audit references on previously approved hospitals.
	Active bool `json:"active"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}
