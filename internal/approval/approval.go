// Package approval implements the hospital onboarding workflow. Hospitals
// submit an application with a licensing certificate and start unverified;
// an admin then approves or rejects the application. Only approved hospitals
// may authenticate and create blood requests.
package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bloodlink/internal/auth"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/metrics"
	"bloodlink/pkg/serrors"
	"bloodlink/pkg/storage"
)

// SubmitParams carries the fields of a hospital application.
type SubmitParams struct {
	Name           string
	Email          string
	Password       string
	Location       string
	CertificateRef string
}

// AdminStats groups the aggregate counts shown on the admin dashboard.
type AdminStats struct {
	ApprovedHospitals int64 `json:"approvedHospitals"`
	PendingHospitals  int64 `json:"pendingHospitals"`
	ActiveDonors      int64 `json:"activeDonors"`
	TotalRequests     int64 `json:"totalRequests"`
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
	metrics *metrics.Metrics
}

// Submit validates and stores a new hospital application in the UNVERIFIED
// state. The login email must be unique. The certificate reference points to
// the uploaded licensing document; it is stored opaquely for admin review.
func (s service) Submit(ctx context.Context, params SubmitParams) (*domain.Hospital, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	location := strings.TrimSpace(params.Location)
	if name == "" || email == "" || params.Password == "" || location == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name, email, password and location are required")
	}
	if params.CertificateRef == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "licensing certificate is required")
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	stored, err := s.storage.StoreHospital(ctx, domain.Hospital{
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		Location:       location,
		CertificateRef: params.CertificateRef,
		Status:         domain.ApprovalStatusUnverified,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, serrors.With(serrors.ErrConflict, "email already registered")
		}

		return nil, fmt.Errorf("could not store hospital: %w", err)
	}

	return stored, nil
}

// Approve transitions an unverified hospital to approved, recording the
// deciding admin. Approving a hospital that has already been decided fails
// with an invalid-state error; both outcomes of a concurrent double approve
// are therefore well defined, with exactly one winner.
func (s service) Approve(ctx context.Context, id domain.HospitalID, by domain.AdminID) (*domain.Hospital, error) {
	updated, err := s.storage.ApproveHospital(ctx, id, by)
	if err != nil {
		return nil, fmt.Errorf("could not approve hospital: %w", err)
	}
	if updated == nil {
		return nil, s.classifyDecisionMiss(ctx, id)
	}

	s.metrics.IncHospitalsApproved()

	return updated, nil
}

// Reject transitions an unverified hospital to rejected. The record is
// retained so the decision stays auditable; the rejected hospital can never
// authenticate.
func (s service) Reject(ctx context.Context, id domain.HospitalID, by domain.AdminID) (*domain.Hospital, error) {
	updated, err := s.storage.RejectHospital(ctx, id, by)
	if err != nil {
		return nil, fmt.Errorf("could not reject hospital: %w", err)
	}
	if updated == nil {
		return nil, s.classifyDecisionMiss(ctx, id)
	}

	s.metrics.IncHospitalsRejected()

	return updated, nil
}

// classifyDecisionMiss distinguishes why a compare-and-set decision did not
// apply: the hospital either does not exist or is no longer unverified.
func (s service) classifyDecisionMiss(ctx context.Context, id domain.HospitalID) error {
	existing, err := s.storage.HospitalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not fetch hospital: %w", err)
	}
	if existing == nil {
		return serrors.With(serrors.ErrNotFound, "hospital not found")
	}

	return serrors.With(serrors.ErrInvalidState, "hospital is already %s", strings.ToLower(string(existing.Status)))
}

// Pending returns all hospitals awaiting review, oldest application first.
func (s service) Pending(ctx context.Context) ([]domain.Hospital, error) {
	hospitals, err := s.storage.PendingHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list pending hospitals: %w", err)
	}

	return hospitals, nil
}

// Stats returns the aggregate counts for the admin dashboard.
func (s service) Stats(ctx context.Context) (AdminStats, error) {
	hospitalCounts, err := s.storage.HospitalCounts(ctx)
	if err != nil {
		return AdminStats{}, fmt.Errorf("could not count hospitals: %w", err)
	}

	activeDonors, err := s.storage.ActiveDonorCount(ctx)
	if err != nil {
		return AdminStats{}, fmt.Errorf("could not count active donors: %w", err)
	}

	totalRequests, err := s.storage.TotalRequestCount(ctx)
	if err != nil {
		return AdminStats{}, fmt.Errorf("could not count blood requests: %w", err)
	}

	return AdminStats{
		ApprovedHospitals: hospitalCounts.Approved,
		PendingHospitals:  hospitalCounts.Pending,
		ActiveDonors:      activeDonors,
		TotalRequests:     totalRequests,
	}, nil
}

// New creates a new approval Service backed by the provided storage.
func New(storage storage.Storage, metrics *metrics.Metrics) Service {
	return &service{
		storage: storage,
		metrics: metrics,
	}
}
