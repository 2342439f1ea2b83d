package postgres

import (
	"context"
	"fmt"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	donorsTable = "donors"
)

func (p *PgSQL) StoreDonor(ctx context.Context, donor domain.Donor) (*domain.Donor, error) {
	var pgDonor PgDonor
	pgDonor.FromDomain(donor)

	var row PgDonor
	if _, err := p.Builder.Insert(donorsTable).
		Rows(pgDonor).
		Returning(&PgDonor{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicateKey
		}

		return nil, fmt.Errorf("could not store donor into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DonorByID(ctx context.Context, id domain.DonorID) (*domain.Donor, error) {
	var row PgDonor
	found, err := p.Builder.From(donorsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch donor by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Donors returns donors matching the given filter. When OldestFirst is set,
// rows are ordered by created_at ASC with id as a tie-break, otherwise newest
// first.
func (p *PgSQL) Donors(ctx context.Context, filter storage.DonorFilter) ([]domain.Donor, error) {
	var w []goqu.Expression
	if filter.BloodType != "" {
		w = append(w, goqu.I("blood_type").Eq(string(filter.BloodType)))
	}
	if filter.ActiveOnly {
		w = append(w, goqu.I("is_active").IsTrue())
	}

	order := []exp.OrderedExpression{goqu.I("created_at").Desc(), goqu.I("id").Desc()}
	if filter.OldestFirst {
		order = []exp.OrderedExpression{goqu.I("created_at").Asc(), goqu.I("id").Asc()}
	}

	var rows []PgDonor
	if err := p.Builder.From(donorsTable).
		Where(w...).
		Order(order...).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch donors from pg: %w", err)
	}

	return pgDonorsToDomain(rows), nil
}

// DeactivateDonor marks an active donor as inactive, returning the updated
// record. Returns nil when no active donor with the given id exists.
func (p *PgSQL) DeactivateDonor(ctx context.Context, id domain.DonorID) (*domain.Donor, error) {
	var row PgDonor
	found, err := p.Builder.Update(donorsTable).
		Set(goqu.Record{
			"is_active": false,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("is_active").IsTrue(),
	).Returning(&PgDonor{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not deactivate donor in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ActiveDonorCount(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(donorsTable).
		Where(goqu.I("is_active").IsTrue()).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count active donors in pg: %w", err)
	}

	return count, nil
}
