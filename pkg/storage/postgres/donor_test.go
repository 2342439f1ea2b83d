package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/storage"
	"bloodlink/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storeTestDonor(t *testing.T, pg *postgres.PgSQL, phone string, bloodType domain.BloodType) *domain.Donor {
	t.Helper()

	stored, err := pg.StoreDonor(context.Background(), domain.Donor{
		Name:      "Donor " + phone,
		Phone:     phone,
		WhatsApp:  phone,
		BloodType: bloodType,
		Location:  "Springfield",
		Active:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	return stored
}

func TestPgSQL_StoreDonor(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := storeTestDonor(t, pgSQL, "+15551000001", domain.BloodTypeOPos)
	require.NotEqual(t, domain.DonorID{}, stored.ID)
	require.True(t, stored.Active)
	require.False(t, stored.CreatedAt.IsZero())

	// duplicate phone maps to ErrDuplicateKey
	_, err := pgSQL.StoreDonor(ctx, domain.Donor{
		Name:      "Other Donor",
		Phone:     "+15551000001",
		WhatsApp:  "+15551000001",
		BloodType: domain.BloodTypeANeg,
		Location:  "Shelbyville",
		Active:    true,
	})
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestPgSQL_DonorByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := storeTestDonor(t, pgSQL, "+15551000002", domain.BloodTypeBPos)

	got, err := pgSQL.DonorByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
	require.Equal(t, domain.BloodTypeBPos, got.BloodType)

	missing, err := pgSQL.DonorByID(ctx, domain.DonorID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_Donors_FilterAndOrder(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	first := storeTestDonor(t, pgSQL, "+15551000003", domain.BloodTypeOPos)
	second := storeTestDonor(t, pgSQL, "+15551000004", domain.BloodTypeOPos)
	otherType := storeTestDonor(t, pgSQL, "+15551000005", domain.BloodTypeONeg)
	inactive := storeTestDonor(t, pgSQL, "+15551000006", domain.BloodTypeOPos)

	// spread registrations one minute apart so ordering is deterministic
	db := pgSQL.DB.(*sql.DB)
	base := time.Now().UTC().Add(-time.Hour)
	for i, d := range []*domain.Donor{first, second, otherType, inactive} {
		_, err := db.ExecContext(ctx, "UPDATE donors SET created_at = $1 WHERE id = $2",
			base.Add(time.Duration(i)*time.Minute), uuid.UUID(d.ID))
		require.NoError(t, err)
	}

	deactivated, err := pgSQL.DeactivateDonor(ctx, inactive.ID)
	require.NoError(t, err)
	require.NotNil(t, deactivated)

	// active O+ donors only, oldest first
	donors, err := pgSQL.Donors(ctx, storage.DonorFilter{
		BloodType:   domain.BloodTypeOPos,
		ActiveOnly:  true,
		OldestFirst: true,
	})
	require.NoError(t, err)
	require.Len(t, donors, 2)
	require.Equal(t, first.ID, donors[0].ID)
	require.Equal(t, second.ID, donors[1].ID)

	// unfiltered listing is newest first and includes everyone
	all, err := pgSQL.Donors(ctx, storage.DonorFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, inactive.ID, all[0].ID)
}

func TestPgSQL_DeactivateDonor(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := storeTestDonor(t, pgSQL, "+15551000007", domain.BloodTypeABPos)

	updated, err := pgSQL.DeactivateDonor(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.False(t, updated.Active)

	// repeating the deactivation misses the is_active predicate
	again, err := pgSQL.DeactivateDonor(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, again)

	// unknown donor also returns nil
	missing, err := pgSQL.DeactivateDonor(ctx, domain.DonorID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_ActiveDonorCount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	storeTestDonor(t, pgSQL, "+15551000008", domain.BloodTypeAPos)
	inactive := storeTestDonor(t, pgSQL, "+15551000009", domain.BloodTypeAPos)
	_, err := pgSQL.DeactivateDonor(ctx, inactive.ID)
	require.NoError(t, err)

	count, err := pgSQL.ActiveDonorCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
