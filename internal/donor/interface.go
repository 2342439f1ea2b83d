package donor

import (
	"context"

	"bloodlink/pkg/domain"
)

//go:generate mockgen -package mockdonor -source=interface.go -destination=mock/mockdonor.go *
type Service interface {
	Register(ctx context.Context, params RegisterParams) (*domain.Donor, error)
	List(ctx context.Context, params ListParams) ([]domain.Donor, error)
	Deactivate(ctx context.Context, id domain.DonorID) (*domain.Donor, error)
}
