package approval

import (
	"context"

	"bloodlink/pkg/domain"
)

//go:generate mockgen -package mockapproval -source=interface.go -destination=mock/mockapproval.go *
type Service interface {
	Submit(ctx context.Context, params SubmitParams) (*domain.Hospital, error)
	Approve(ctx context.Context, id domain.HospitalID, by domain.AdminID) (*domain.Hospital, error)
	Reject(ctx context.Context, id domain.HospitalID, by domain.AdminID) (*domain.Hospital, error)
	Pending(ctx context.Context) ([]domain.Hospital, error)
	Stats(ctx context.Context) (AdminStats, error)
}
