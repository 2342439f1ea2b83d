package request

import (
	"context"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/storage"
)

//go:generate mockgen -package mockrequest -source=interface.go -destination=mock/mockrequest.go *
type Service interface {
	Create(ctx context.Context,
		hospitalID domain.HospitalID,
		params CreateParams) (*domain.BloodRequest, int, error)
	MarkFulfilled(ctx context.Context,
		hospitalID domain.HospitalID,
		id domain.RequestID) (*domain.BloodRequest, error)
	MarkCancelled(ctx context.Context,
		hospitalID domain.HospitalID,
		id domain.RequestID) (*domain.BloodRequest, error)
	ListByHospital(ctx context.Context,
		hospitalID domain.HospitalID,
		params ListParams) ([]domain.BloodRequest, string, error)
	HospitalStats(ctx context.Context, hospitalID domain.HospitalID) (storage.RequestCounts, error)
}
