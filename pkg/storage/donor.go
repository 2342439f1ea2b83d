package storage

import (
	"context"

	"bloodlink/pkg/domain"
)

// DonorFilter narrows donor queries. The zero value matches every donor in
// registration order, newest first.
type DonorFilter struct {
	// BloodType, when non-empty, restricts results to that exact type.
	BloodType domain.BloodType
	// ActiveOnly, when true, excludes deactivated donors.
	ActiveOnly bool
	// OldestFirst, when true, orders by registration time ascending instead
	// of descending. Matching relies on this for deterministic ordering.
	OldestFirst bool
}

// DonorStorage defines persistence and query operations for donors.
type DonorStorage interface {
	// StoreDonor inserts a donor and returns the stored row as it exists in
	// the database (including generated fields). A duplicate phone number
	// fails with ErrDuplicateKey; concurrent registrations with the same
	// phone resolve with exactly one conflict.
	StoreDonor(ctx context.Context, donor domain.Donor) (*domain.Donor, error)
	// DonorByID fetches a donor by id. Returns nil when not found.
	DonorByID(ctx context.Context, id domain.DonorID) (*domain.Donor, error)
	// Donors returns all donors matching the filter. An empty result is not
	// an error. Ordering is by registration time with id as tie-break, so it
	// is deterministic across repeated calls with unchanged data.
	Donors(ctx context.Context, filter DonorFilter) ([]domain.Donor, error)
	// DeactivateDonor clears the donor's active flag and returns the updated
	// row, or nil if the donor does not exist. Donors are never hard-deleted.
	DeactivateDonor(ctx context.Context, id domain.DonorID) (*domain.Donor, error)
	// ActiveDonorCount returns the number of donors currently active.
	ActiveDonorCount(ctx context.Context) (int64, error)
}
