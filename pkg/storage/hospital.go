package storage

import (
	"context"

	"bloodlink/pkg/domain"
)

// HospitalCounts groups the aggregate numbers shown on the admin dashboard.
type HospitalCounts struct {
	// Approved is the number of hospitals currently in the APPROVED state.
	Approved int64
	// Pending is the number of hospitals still awaiting a decision.
	Pending int64
}

// HospitalStorage defines persistence and query operations for hospitals.
//
// Approval transitions are compare-and-set: ApproveHospital and
// RejectHospital only touch rows still in the UNVERIFIED state, so two
// concurrent decisions on the same hospital resolve with exactly one winner.
type HospitalStorage interface {
	// StoreHospital inserts a hospital in the UNVERIFIED state and returns
	// the stored row. A duplicate email fails with ErrDuplicateKey.
	StoreHospital(ctx context.Context, hospital domain.Hospital) (*domain.Hospital, error)
	// HospitalByID fetches a hospital by id. Returns nil when not found.
	HospitalByID(ctx context.Context, id domain.HospitalID) (*domain.Hospital, error)
	// HospitalByEmail fetches a hospital by login email. Returns nil when not
	// found.
	HospitalByEmail(ctx context.Context, email string) (*domain.Hospital, error)
	// PendingHospitals returns all UNVERIFIED hospitals ordered by submission
	// time ascending (oldest first), so admins triage the longest-waiting
	// applicants first.
	PendingHospitals(ctx context.Context) ([]domain.Hospital, error)
	// ApproveHospital atomically transitions UNVERIFIED -> APPROVED,
	// recording the approver and approval time. Returns the updated row, or
	// nil when the hospital is absent or no longer UNVERIFIED (the caller
	// distinguishes the two).
	ApproveHospital(ctx context.Context, id domain.HospitalID, by domain.AdminID) (*domain.Hospital, error)
	// RejectHospital atomically transitions UNVERIFIED -> REJECTED,
	// recording the deciding admin. The row is retained for audit. Returns
	// the updated row, or nil when the hospital is absent or no longer
	// UNVERIFIED.
	RejectHospital(ctx context.Context, id domain.HospitalID, by domain.AdminID) (*domain.Hospital, error)
	// HospitalCounts returns approved and pending hospital counts.
	HospitalCounts(ctx context.Context) (HospitalCounts, error)
}
