// Package request implements the blood request lifecycle. Requests are
// created by approved hospitals, matched against the donor registry, and
// move from pending to exactly one terminal state (fulfilled or cancelled).
package request

import (
	"context"
	"fmt"
	"time"

	"bloodlink/internal/config"
	"bloodlink/internal/matching"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/metrics"
	"bloodlink/pkg/serrors"
	"bloodlink/pkg/storage"

	"github.com/google/uuid"
)

// Options configure request creation behavior.
type Options struct {
	// NotifyMaxAttempts is the maximum number of attempts the background
	// worker should make when dispatching donor notifications for a request.
	NotifyMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		NotifyMaxAttempts: cfg.Notify.MaxAttempts,
	}
}

// CreateParams carries the fields of a new blood request.
type CreateParams struct {
	BloodType string
	Urgency   string
	Quantity  int
	Notes     string
}

// ListParams narrow and paginate a hospital's request listing.
type ListParams struct {
	// Status, when non-empty, filters to a single lifecycle status.
	Status string
	// Cursor is an RFC3339 timestamp; only requests created before it are
	// returned.
	Cursor string
	// Limit caps the page size.
	Limit uint
}

// service is the concrete implementation of the Service interface.
type service struct {
	options Options
	storage storage.Storage
	metrics *metrics.Metrics
}

// Create validates and stores a new pending blood request for the hospital,
// computes the eligible donors and enqueues a notification job, all in one
// transaction. It returns the stored request together with the number of
// donors eligible at creation time; actual notification happens
// asynchronously, so that number is a snapshot, not a delivery receipt.
func (s service) Create(ctx context.Context,
	hospitalID domain.HospitalID,
	params CreateParams) (*domain.BloodRequest, int, error) {
	bloodType, err := domain.ParseBloodType(params.BloodType)
	if err != nil {
		return nil, 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid blood type")
	}
	urgency, err := domain.ParseUrgency(params.Urgency)
	if err != nil {
		return nil, 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid urgency")
	}
	if params.Quantity <= 0 {
		return nil, 0, serrors.With(serrors.ErrBadRequest, "quantity must be positive")
	}

	hospital, err := s.storage.HospitalByID(ctx, hospitalID)
	if err != nil {
		return nil, 0, fmt.Errorf("could not fetch hospital: %w", err)
	}
	if hospital == nil {
		return nil, 0, serrors.With(serrors.ErrNotFound, "hospital not found")
	}
	if !hospital.IsApproved() {
		return nil, 0, serrors.With(serrors.ErrForbidden, "hospital not approved")
	}

	var (
		request  *domain.BloodRequest
		eligible int
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreRequest(ctx, domain.BloodRequest{
			HospitalID: hospitalID,
			BloodType:  bloodType,
			Urgency:    urgency,
			Quantity:   params.Quantity,
			Notes:      params.Notes,
			Status:     domain.RequestStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store request: %w", err)
		}
		request = stored

		donors, err := matching.EligibleDonors(ctx, tx, bloodType)
		if err != nil {
			return err
		}
		eligible = len(donors)

		if _, err := tx.AddJob(ctx, NotifyJobArgs{
			RequestID:   uuid.UUID(request.ID),
			maxAttempts: s.options.NotifyMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add notification job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, 0, fmt.Errorf("could not create blood request: %w", err)
	}

	s.metrics.IncRequestsCreated(string(urgency))
	s.metrics.AddDonorsNotified(eligible)

	return request, eligible, nil
}

// MarkFulfilled transitions a pending request to fulfilled. Re-invoking on an
// already fulfilled request is an idempotent no-op; fulfilling a cancelled
// request is an invalid-state error.
func (s service) MarkFulfilled(ctx context.Context,
	hospitalID domain.HospitalID,
	id domain.RequestID) (*domain.BloodRequest, error) {
	return s.transition(ctx, hospitalID, id, domain.RequestStatusFulfilled)
}

// MarkCancelled transitions a pending request to cancelled with the same
// idempotency rules as MarkFulfilled.
func (s service) MarkCancelled(ctx context.Context,
	hospitalID domain.HospitalID,
	id domain.RequestID) (*domain.BloodRequest, error) {
	return s.transition(ctx, hospitalID, id, domain.RequestStatusCancelled)
}

func (s service) transition(ctx context.Context,
	hospitalID domain.HospitalID,
	id domain.RequestID,
	target domain.RequestStatus) (*domain.BloodRequest, error) {
	request, err := s.storage.RequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch request: %w", err)
	}
	if request == nil {
		return nil, serrors.With(serrors.ErrNotFound, "request not found")
	}
	if request.HospitalID != hospitalID {
		return nil, serrors.With(serrors.ErrForbidden, "request belongs to another hospital")
	}
	if request.Status == target {
		// already in the requested terminal state
		return request, nil
	}
	if request.Status.IsTerminal() {
		return nil, serrors.With(serrors.ErrInvalidState,
			"request is already %s", string(request.Status))
	}

	updated, err := s.storage.TransitionRequest(ctx, id, domain.RequestStatusPending, target)
	if err != nil {
		return nil, fmt.Errorf("could not transition request: %w", err)
	}
	if updated != nil {
		return updated, nil
	}

	// lost a race with a concurrent transition; re-read to classify
	current, err := s.storage.RequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch request: %w", err)
	}
	if current != nil && current.Status == target {
		return current, nil
	}

	return nil, serrors.With(serrors.ErrInvalidState, "request is no longer pending")
}

// ListByHospital returns a page of the hospital's own requests, newest first,
// along with the next-page cursor (empty when there are no more results).
func (s service) ListByHospital(ctx context.Context,
	hospitalID domain.HospitalID,
	params ListParams) ([]domain.BloodRequest, string, error) {
	var status domain.RequestStatus
	if params.Status != "" {
		parsed, ok := domain.ParseRequestStatus(params.Status)
		if !ok {
			return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", params.Status)
		}
		status = parsed
	}

	var cursorTime time.Time
	if params.Cursor != "" {
		t, err := time.Parse(time.RFC3339, params.Cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.HospitalRequests(ctx, hospitalID, status, cursorTime, params.Limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list requests: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Requests, next, nil
}

// HospitalStats returns the per-hospital request aggregates for the hospital
// dashboard.
func (s service) HospitalStats(ctx context.Context, hospitalID domain.HospitalID) (storage.RequestCounts, error) {
	counts, err := s.storage.RequestCounts(ctx, hospitalID)
	if err != nil {
		return storage.RequestCounts{}, fmt.Errorf("could not count requests: %w", err)
	}

	return counts, nil
}

// New creates a new request Service backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, metrics *metrics.Metrics, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		metrics: metrics,
	}
}
