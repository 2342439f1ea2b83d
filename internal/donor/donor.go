// Package donor implements donor registration and registry management.
package donor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/metrics"
	"bloodlink/pkg/serrors"
	"bloodlink/pkg/storage"
)

// RegisterParams carries the fields needed to register a new donor.
type RegisterParams struct {
	Name      string
	Phone     string
	WhatsApp  string
	BloodType string
	Location  string
}

// ListParams narrows donor listing.
type ListParams struct {
	// BloodType, when non-empty, restricts results to that exact type.
	BloodType string
	// ActiveOnly excludes deactivated donors.
	ActiveOnly bool
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
	metrics *metrics.Metrics
}

// Register validates and stores a new donor. The phone number must be unique
// across the registry; when no WhatsApp number is provided, the phone number
// is used for notifications as well. New donors start active.
func (s service) Register(ctx context.Context, params RegisterParams) (*domain.Donor, error) {
	name := strings.TrimSpace(params.Name)
	phone := strings.TrimSpace(params.Phone)
	location := strings.TrimSpace(params.Location)
	if name == "" || phone == "" || location == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name, phone and location are required")
	}

	bloodType, err := domain.ParseBloodType(params.BloodType)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid blood type")
	}

	whatsApp := strings.TrimSpace(params.WhatsApp)
	if whatsApp == "" {
		whatsApp = phone
	}

	stored, err := s.storage.StoreDonor(ctx, domain.Donor{
		Name:      name,
		Phone:     phone,
		WhatsApp:  whatsApp,
		BloodType: bloodType,
		Location:  location,
		Active:    true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, serrors.With(serrors.ErrConflict, "phone number already registered")
		}

		return nil, fmt.Errorf("could not register donor: %w", err)
	}

	s.metrics.IncDonorsRegistered()

	return stored, nil
}

// List returns donors matching the given filters, newest registration first.
func (s service) List(ctx context.Context, params ListParams) ([]domain.Donor, error) {
	filter := storage.DonorFilter{ActiveOnly: params.ActiveOnly}
	if params.BloodType != "" {
		bloodType, err := domain.ParseBloodType(params.BloodType)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid blood type")
		}
		filter.BloodType = bloodType
	}

	donors, err := s.storage.Donors(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list donors: %w", err)
	}

	return donors, nil
}

// Deactivate removes a donor from the matching pool without deleting the
// record. Deactivating an already inactive donor is a no-op returning the
// current record.
func (s service) Deactivate(ctx context.Context, id domain.DonorID) (*domain.Donor, error) {
	updated, err := s.storage.DeactivateDonor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not deactivate donor: %w", err)
	}
	if updated != nil {
		return updated, nil
	}

	// either the donor is absent or it was already inactive
	existing, err := s.storage.DonorByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch donor: %w", err)
	}
	if existing == nil {
		return nil, serrors.With(serrors.ErrNotFound, "donor not found")
	}

	return existing, nil
}

// New creates a new donor Service backed by the provided storage.
func New(storage storage.Storage, metrics *metrics.Metrics) Service {
	return &service{
		storage: storage,
		metrics: metrics,
	}
}
