package domain

import (
	"time"

	"github.com/google/uuid"
)

// HospitalID uniquely identifies a hospital.
// It wraps uuid.UUID to provide type safety at the domain layer.
type HospitalID uuid.UUID

func (id HospitalID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the id in canonical UUID form for JSON responses.
func (id HospitalID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses a canonical UUID string.
func (id *HospitalID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = HospitalID(parsed)

	return nil
}

// ApprovalStatus represents a hospital's position in the trust lifecycle.
// The only transitions are UNVERIFIED -> APPROVED and UNVERIFIED -> REJECTED;
// both APPROVED and REJECTED are terminal.
type ApprovalStatus string

const (
	// ApprovalStatusUnverified indicates the hospital has registered but has
	// not been vetted by an admin yet. Unverified hospitals cannot
	// authenticate or create blood requests.
	ApprovalStatusUnverified ApprovalStatus = "UNVERIFIED"
	// ApprovalStatusApproved indicates an admin vetted the hospital. Approved
	// hospitals may authenticate and create blood requests.
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	// ApprovalStatusRejected indicates an admin declined the application.
	// Rejected hospitals are retained for audit but can never act.
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// ParseApprovalStatus validates a raw status string.
func ParseApprovalStatus(raw string) (ApprovalStatus, bool) {
	switch ApprovalStatus(raw) {
	case ApprovalStatusUnverified, ApprovalStatusApproved, ApprovalStatusRejected:
		return ApprovalStatus(raw), true
	}

	return "", false
}

// Hospital represents a hospital account and its approval state.
type Hospital struct {
	// ID is the unique identifier of the hospital.
	ID HospitalID `json:"id"`

	// Name is the hospital's display name.
	Name string `json:"name"`
	// Email is the login email. It is unique across hospitals.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the login credential. Never exposed.
	PasswordHash string `json:"-"`
	// Location is free-text location information.
	Location string `json:"location"`
	// CertificateRef is an opaque reference to the uploaded accreditation
	// certificate. The core never inspects the referenced content.
	CertificateRef string `json:"certificateRef"`

	// Status is the hospital's approval lifecycle state.
	Status ApprovalStatus `json:"status"`
	// ApprovedBy is the admin who approved the hospital. Zero unless approved.
	ApprovedBy AdminID `json:"approvedBy"`
	// ApprovedAt is when the hospital was approved. Zero unless approved.
	ApprovedAt time.Time `json:"approvedAt"`

	// CreatedAt is the registration time. Pending listings are ordered by it,
	// oldest first, so the longest-waiting applicant is triaged first.
	CreatedAt time.Time `json:"createdAt"`
}

// IsApproved reports whether the hospital may authenticate and create
// blood requests.
func (h *Hospital) IsApproved() bool {
	return h.Status == ApprovalStatusApproved
}
