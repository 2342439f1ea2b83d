package matching

import (
	"context"

	"bloodlink/pkg/domain"
)

//go:generate mockgen -package mockmatching -source=interface.go -destination=mock/mockmatching.go *
type Matcher interface {
	Eligible(ctx context.Context, rawBloodType string) ([]domain.Donor, error)
}
