package auth

import (
	"context"

	"bloodlink/pkg/domain"
)

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	LoginHospital(ctx context.Context, email, password string) (string, *domain.Hospital, error)
	LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error)
}
