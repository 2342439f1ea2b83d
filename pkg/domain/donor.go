package domain

import (
	"time"

	"github.com/google/uuid"
)

// DonorID uniquely identifies a donor.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DonorID uuid.UUID

func (id DonorID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the id in canonical UUID form for JSON responses.
func (id DonorID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses a canonical UUID string.
func (id *DonorID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = DonorID(parsed)

	return nil
}

// Donor represents a registered blood donor.
// Donors are never hard-deleted; an inactive donor is excluded from matching
// and from hospital-facing listings but kept as a historical record.
type Donor struct {
	// ID is the unique identifier of the donor.
	ID DonorID `json:"id"`

	// Name is the donor's display name.
	Name string `json:"name"`
	// Phone is the donor's primary contact number. It is unique across donors.
	Phone string `json:"phone"`
	// WhatsApp is the donor's secondary contact number. When the donor did not
	// provide one at registration it defaults to Phone.
	WhatsApp string `json:"whatsapp"`
	// BloodType is the donor's ABO/Rh blood type.
	BloodType BloodType `json:"bloodType"`
	// Location is free-text location information supplied by the donor.
	Location string `json:"location"`

	// Active reports whether the donor is currently available for matching.
	Active bool `json:"active"`

	// CreatedAt is the registration time. Matching orders donors by this
	// field, so it doubles as the deterministic eligibility order.
	CreatedAt time.Time `json:"createdAt"`
}
