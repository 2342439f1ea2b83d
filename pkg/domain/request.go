package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RequestID uniquely identifies a blood request.
// It wraps uuid.UUID to provide type safety at the domain layer.
type RequestID uuid.UUID

func (id RequestID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the id in canonical UUID form for JSON responses.
func (id RequestID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses a canonical UUID string.
func (id *RequestID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = RequestID(parsed)

	return nil
}

// Urgency classifies how quickly a blood request needs to be acted on.
// It is informational; no differential scheduling is attached to it.
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// ParseUrgency validates a raw urgency string.
func ParseUrgency(raw string) (Urgency, error) {
	switch Urgency(raw) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return Urgency(raw), nil
	}

	return "", fmt.Errorf("unknown urgency %q", raw)
}

// RequestStatus represents the lifecycle state of a blood request.
// The only transitions are PENDING -> FULFILLED and PENDING -> CANCELLED;
// both FULFILLED and CANCELLED are terminal.
type RequestStatus string

const (
	// RequestStatusPending indicates the request is open and donors may still
	// be contacted for it.
	RequestStatusPending RequestStatus = "PENDING"
	// RequestStatusFulfilled indicates the owning hospital obtained the blood.
	RequestStatusFulfilled RequestStatus = "FULFILLED"
	// RequestStatusCancelled indicates the owning hospital withdrew the request.
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// ParseRequestStatus validates a raw status string.
func ParseRequestStatus(raw string) (RequestStatus, bool) {
	switch RequestStatus(raw) {
	case RequestStatusPending, RequestStatusFulfilled, RequestStatusCancelled:
		return RequestStatus(raw), true
	}

	return "", false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusFulfilled || s == RequestStatusCancelled
}

// BloodRequest represents a hospital's request for a quantity of one blood
// type. Requests are historical records and are never deleted.
type BloodRequest struct {
	// ID is the unique identifier of the request.
	ID RequestID `json:"id"`
	// HospitalID is the owning hospital. Only the owner may transition the
	// request.
	HospitalID HospitalID `json:"hospitalId"`

	// BloodType is the requested ABO/Rh type. Matching is exact.
	BloodType BloodType `json:"bloodType"`
	// Urgency is the priority classification supplied by the hospital.
	Urgency Urgency `json:"urgency"`
	// Quantity is the number of units needed. Always positive.
	Quantity int `json:"quantity"`
	// Notes is free text attached by the hospital.
	Notes string `json:"notes,omitempty"`

	// Status is the current lifecycle state of the request.
	Status RequestStatus `json:"status"`

	// CreatedAt is when the request was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the request last changed state. Zero until the first
	// transition.
	UpdatedAt time.Time `json:"updatedAt"`
}
