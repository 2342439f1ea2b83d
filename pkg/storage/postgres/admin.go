package postgres

import (
	"context"
	"fmt"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	adminsTable = "admins"
)

func (p *PgSQL) StoreAdmin(ctx context.Context, admin domain.Admin) (*domain.Admin, error) {
	var pgAdmin PgAdmin
	pgAdmin.FromDomain(admin)

	var row PgAdmin
	if _, err := p.Builder.Insert(adminsTable).
		Rows(pgAdmin).
		Returning(&PgAdmin{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicateKey
		}

		return nil, fmt.Errorf("could not store admin into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var row PgAdmin
	found, err := p.Builder.From(adminsTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch admin by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
