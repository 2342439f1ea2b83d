package storage

import (
	"context"
	"time"

	"bloodlink/pkg/domain"
)

// RequestPage groups a page of blood requests for a hospital together with an
// optional NextCursor used for pagination.
type RequestPage struct {
	// Requests contains the current page of blood request records.
	Requests []domain.BloodRequest
	// NextCursor points to the timestamp to be used as the cursor for
	// fetching the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// RequestCounts groups the aggregate numbers shown on the hospital dashboard.
type RequestCounts struct {
	Total     int64
	Pending   int64
	Fulfilled int64
}

// RequestStorage defines persistence and query operations for blood requests.
// Requests are historical records: there is no delete.
type RequestStorage interface {
	// StoreRequest inserts a request in the PENDING state and returns the
	// stored row as it exists in the database (including generated fields).
	StoreRequest(ctx context.Context, request domain.BloodRequest) (*domain.BloodRequest, error)
	// RequestByID fetches a request by id. Returns nil when not found.
	RequestByID(ctx context.Context, id domain.RequestID) (*domain.BloodRequest, error)
	// TransitionRequest atomically moves a request from one status to
	// another, setting updated_at. The update is compare-and-set on the
	// current status: it returns the updated row, or nil when the request is
	// absent or its status is not from. Two concurrent transitions on the
	// same request resolve with exactly one winner.
	TransitionRequest(ctx context.Context,
		id domain.RequestID,
		from, to domain.RequestStatus) (*domain.BloodRequest, error)
	// HospitalRequests returns a page of requests owned by the hospital,
	// newest first, created before the optional cursor time and limited by
	// limit. If status is non-empty, results are filtered to that status.
	HospitalRequests(ctx context.Context,
		hospitalID domain.HospitalID,
		status domain.RequestStatus,
		cursor time.Time,
		limit uint) (RequestPage, error)
	// RequestCounts returns the per-hospital request aggregates.
	RequestCounts(ctx context.Context, hospitalID domain.HospitalID) (RequestCounts, error)
	// TotalRequestCount returns the number of requests across all hospitals.
	TotalRequestCount(ctx context.Context) (int64, error)
}
