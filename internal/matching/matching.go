// Package matching selects which donors are eligible for a blood request.
// Matching is exact on blood type: no compatibility widening (an O- donor is
// not offered for an A+ request). Only active donors are considered, ordered
// by registration time so the result is deterministic for a given registry
// state.
package matching

import (
	"context"
	"fmt"
	"time"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/metrics"
	"bloodlink/pkg/serrors"
	"bloodlink/pkg/storage"
)

// EligibleDonors returns the active donors whose blood type exactly matches
// bloodType, oldest registration first. It is shared by the matcher service,
// request creation and the notification worker so all three agree on what
// "eligible" means.
func EligibleDonors(ctx context.Context,
	st storage.DonorStorage,
	bloodType domain.BloodType) ([]domain.Donor, error) {
	donors, err := st.Donors(ctx, storage.DonorFilter{
		BloodType:   bloodType,
		ActiveOnly:  true,
		OldestFirst: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch eligible donors: %w", err)
	}

	return donors, nil
}

// matcher is the concrete implementation of the Matcher interface.
type matcher struct {
	storage storage.Storage
	metrics *metrics.Metrics
}

// Eligible validates the blood type and returns the matching active donors.
func (m matcher) Eligible(ctx context.Context, rawBloodType string) ([]domain.Donor, error) {
	bloodType, err := domain.ParseBloodType(rawBloodType)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid blood type")
	}

	start := time.Now()
	donors, err := EligibleDonors(ctx, m.storage, bloodType)
	if err != nil {
		return nil, err
	}
	m.metrics.ObserveMatchDuration(time.Since(start).Seconds())

	return donors, nil
}

// New creates a new Matcher backed by the provided storage.
func New(storage storage.Storage, metrics *metrics.Metrics) Matcher {
	return &matcher{
		storage: storage,
		metrics: metrics,
	}
}
