package postgres

import (
	"context"
	"fmt"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	hospitalsTable = "hospitals"
)

func (p *PgSQL) StoreHospital(ctx context.Context, hospital domain.Hospital) (*domain.Hospital, error) {
	var pgHospital PgHospital
	pgHospital.FromDomain(hospital)

	var row PgHospital
	if _, err := p.Builder.Insert(hospitalsTable).
		Rows(pgHospital).
		Returning(&PgHospital{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicateKey
		}

		return nil, fmt.Errorf("could not store hospital into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) HospitalByID(ctx context.Context, id domain.HospitalID) (*domain.Hospital, error) {
	var row PgHospital
	found, err := p.Builder.From(hospitalsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch hospital by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) HospitalByEmail(ctx context.Context, email string) (*domain.Hospital, error) {
	var row PgHospital
	found, err := p.Builder.From(hospitalsTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch hospital by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// PendingHospitals returns all hospitals still awaiting review, oldest
// submission first.
func (p *PgSQL) PendingHospitals(ctx context.Context) ([]domain.Hospital, error) {
	var rows []PgHospital
	if err := p.Builder.From(hospitalsTable).
		Where(goqu.I("status").Eq(string(domain.ApprovalStatusUnverified))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch pending hospitals from pg: %w", err)
	}

	return pgHospitalsToDomain(rows), nil
}

// ApproveHospital moves an unverified hospital to approved, recording the
// approving admin and approval time. The status predicate makes the update a
// compare-and-swap: nil is returned when no unverified hospital with the
// given id exists.
func (p *PgSQL) ApproveHospital(ctx context.Context,
	id domain.HospitalID,
	by domain.AdminID) (*domain.Hospital, error) {
	var row PgHospital
	found, err := p.Builder.Update(hospitalsTable).
		Set(goqu.Record{
			"status":      string(domain.ApprovalStatusApproved),
			"approved_by": uuid.UUID(by),
			"approved_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.ApprovalStatusUnverified)),
	).Returning(&PgHospital{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not approve hospital in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RejectHospital moves an unverified hospital to rejected. The row is kept
// for audit. Same compare-and-swap semantics as ApproveHospital.
func (p *PgSQL) RejectHospital(ctx context.Context,
	id domain.HospitalID,
	by domain.AdminID) (*domain.Hospital, error) {
	var row PgHospital
	found, err := p.Builder.Update(hospitalsTable).
		Set(goqu.Record{
			"status":      string(domain.ApprovalStatusRejected),
			"approved_by": uuid.UUID(by),
			"approved_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.ApprovalStatusUnverified)),
	).Returning(&PgHospital{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not reject hospital in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) HospitalCounts(ctx context.Context) (storage.HospitalCounts, error) {
	approved, err := p.Builder.From(hospitalsTable).
		Where(goqu.I("status").Eq(string(domain.ApprovalStatusApproved))).
		CountContext(ctx)
	if err != nil {
		return storage.HospitalCounts{}, fmt.Errorf("could not count approved hospitals in pg: %w", err)
	}

	pending, err := p.Builder.From(hospitalsTable).
		Where(goqu.I("status").Eq(string(domain.ApprovalStatusUnverified))).
		CountContext(ctx)
	if err != nil {
		return storage.HospitalCounts{}, fmt.Errorf("could not count pending hospitals in pg: %w", err)
	}

	return storage.HospitalCounts{
		Approved: approved,
		Pending:  pending,
	}, nil
}
