package postgres

import (
	"context"
	"fmt"
	"time"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	requestsTable = "blood_requests"
)

func (p *PgSQL) StoreRequest(ctx context.Context, request domain.BloodRequest) (*domain.BloodRequest, error) {
	var pgRequest PgBloodRequest
	pgRequest.FromDomain(request)

	var row PgBloodRequest
	if _, err := p.Builder.Insert(requestsTable).
		Rows(pgRequest).
		Returning(&PgBloodRequest{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store blood request into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RequestByID(ctx context.Context, id domain.RequestID) (*domain.BloodRequest, error) {
	var row PgBloodRequest
	found, err := p.Builder.From(requestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch blood request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// TransitionRequest moves a blood request from one lifecycle status to
// another. The from-status predicate makes the update a compare-and-swap:
// nil is returned when the request does not exist or is no longer in the
// expected status, leaving classification to the caller.
func (p *PgSQL) TransitionRequest(ctx context.Context,
	id domain.RequestID,
	from domain.RequestStatus,
	to domain.RequestStatus) (*domain.BloodRequest, error) {
	var row PgBloodRequest
	found, err := p.Builder.Update(requestsTable).
		Set(goqu.Record{
			"status":     string(to),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(from)),
	).Returning(&PgBloodRequest{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not transition blood request in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// HospitalRequests returns a page of a hospital's blood requests filtered by
// optional status and cursor, newest first. Fetches one extra row to
// determine whether a next page exists.
func (p *PgSQL) HospitalRequests(ctx context.Context,
	hospitalID domain.HospitalID,
	status domain.RequestStatus,
	cursor time.Time,
	limit uint) (storage.RequestPage, error) {
	w := []goqu.Expression{
		goqu.I("hospital_id").Eq(uuid.UUID(hospitalID)),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	ds := p.Builder.From(requestsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgBloodRequest
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.RequestPage{}, fmt.Errorf("could not fetch hospital blood requests from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.RequestPage{
		Requests:   pgRequestsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) RequestCounts(ctx context.Context, hospitalID domain.HospitalID) (storage.RequestCounts, error) {
	base := p.Builder.From(requestsTable).
		Where(goqu.I("hospital_id").Eq(uuid.UUID(hospitalID)))

	total, err := base.CountContext(ctx)
	if err != nil {
		return storage.RequestCounts{}, fmt.Errorf("could not count blood requests in pg: %w", err)
	}

	pending, err := base.Where(goqu.I("status").Eq(string(domain.RequestStatusPending))).CountContext(ctx)
	if err != nil {
		return storage.RequestCounts{}, fmt.Errorf("could not count pending blood requests in pg: %w", err)
	}

	fulfilled, err := base.Where(goqu.I("status").Eq(string(domain.RequestStatusFulfilled))).CountContext(ctx)
	if err != nil {
		return storage.RequestCounts{}, fmt.Errorf("could not count fulfilled blood requests in pg: %w", err)
	}

	return storage.RequestCounts{
		Total:     total,
		Pending:   pending,
		Fulfilled: fulfilled,
	}, nil
}

func (p *PgSQL) TotalRequestCount(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(requestsTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count blood requests in pg: %w", err)
	}

	return count, nil
}
