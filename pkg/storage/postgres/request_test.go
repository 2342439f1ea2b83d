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

func storeTestRequest(t *testing.T,
	pg *postgres.PgSQL,
	hospitalID domain.HospitalID,
	urgency domain.Urgency) *domain.BloodRequest {
	t.Helper()

	stored, err := pg.StoreRequest(context.Background(), domain.BloodRequest{
		HospitalID: hospitalID,
		BloodType:  domain.BloodTypeOPos,
		Urgency:    urgency,
		Quantity:   2,
		Status:     domain.RequestStatusPending,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	return stored
}

func TestPgSQL_StoreRequest(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	hospital := storeTestHospital(t, pgSQL, "req1@hospital.example")
	stored := storeTestRequest(t, pgSQL, hospital.ID, domain.UrgencyHigh)

	require.NotEqual(t, domain.RequestID{}, stored.ID)
	require.Equal(t, domain.RequestStatusPending, stored.Status)
	require.True(t, stored.UpdatedAt.IsZero())
	require.False(t, stored.CreatedAt.IsZero())
}

func TestPgSQL_TransitionRequest_CompareAndSwap(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	hospital := storeTestHospital(t, pgSQL, "req2@hospital.example")
	stored := storeTestRequest(t, pgSQL, hospital.ID, domain.UrgencyCritical)

	fulfilled, err := pgSQL.TransitionRequest(ctx, stored.ID,
		domain.RequestStatusPending, domain.RequestStatusFulfilled)
	require.NoError(t, err)
	require.NotNil(t, fulfilled)
	require.Equal(t, domain.RequestStatusFulfilled, fulfilled.Status)
	require.False(t, fulfilled.UpdatedAt.IsZero())

	// the request is no longer pending, so another transition misses
	cancelled, err := pgSQL.TransitionRequest(ctx, stored.ID,
		domain.RequestStatusPending, domain.RequestStatusCancelled)
	require.NoError(t, err)
	require.Nil(t, cancelled)

	// unknown request
	missing, err := pgSQL.TransitionRequest(ctx, domain.RequestID(uuid.New()),
		domain.RequestStatusPending, domain.RequestStatusFulfilled)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_HospitalRequests_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	hospital := storeTestHospital(t, pgSQL, "req3@hospital.example")
	other := storeTestHospital(t, pgSQL, "req3b@hospital.example")

	stored := make([]*domain.BloodRequest, 0, 5)
	for range 5 {
		stored = append(stored, storeTestRequest(t, pgSQL, hospital.ID, domain.UrgencyMedium))
	}
	// a foreign request must never show up in the listing
	storeTestRequest(t, pgSQL, other.ID, domain.UrgencyLow)

	// spread creations one minute apart, last one newest
	db := pgSQL.DB.(*sql.DB)
	now := time.Now().UTC()
	for i, r := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute)
		_, err := db.ExecContext(ctx, "UPDATE blood_requests SET created_at = $1 WHERE id = $2",
			created, uuid.UUID(r.ID))
		require.NoError(t, err)
	}

	// first page, limit 2
	p1, err := pgSQL.HospitalRequests(ctx, hospital.ID, "", time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Requests, 2)
	require.NotNil(t, p1.NextCursor)

	// second page
	p2, err := pgSQL.HospitalRequests(ctx, hospital.ID, "", *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Requests, 2)
	require.NotNil(t, p2.NextCursor)

	// third (last) page, one row left and no next cursor
	p3, err := pgSQL.HospitalRequests(ctx, hospital.ID, "", *p2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p3.Requests, 1)
	require.Nil(t, p3.NextCursor)

	for _, page := range []storage.RequestPage{p1, p2, p3} {
		for _, r := range page.Requests {
			require.Equal(t, hospital.ID, r.HospitalID)
		}
	}
}

func TestPgSQL_HospitalRequests_StatusFilter(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	hospital := storeTestHospital(t, pgSQL, "req4@hospital.example")
	pending := storeTestRequest(t, pgSQL, hospital.ID, domain.UrgencyHigh)
	done := storeTestRequest(t, pgSQL, hospital.ID, domain.UrgencyHigh)

	_, err := pgSQL.TransitionRequest(ctx, done.ID,
		domain.RequestStatusPending, domain.RequestStatusFulfilled)
	require.NoError(t, err)

	page, err := pgSQL.HospitalRequests(ctx, hospital.ID, domain.RequestStatusPending, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Requests, 1)
	require.Equal(t, pending.ID, page.Requests[0].ID)
}

func TestPgSQL_RequestCounts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	hospital := storeTestHospital(t, pgSQL, "req5@hospital.example")

	storeTestRequest(t, pgSQL, hospital.ID, domain.UrgencyLow)
	fulfilled := storeTestRequest(t, pgSQL, hospital.ID, domain.UrgencyLow)
	cancelled := storeTestRequest(t, pgSQL, hospital.ID, domain.UrgencyLow)

	_, err := pgSQL.TransitionRequest(ctx, fulfilled.ID,
		domain.RequestStatusPending, domain.RequestStatusFulfilled)
	require.NoError(t, err)
	_, err = pgSQL.TransitionRequest(ctx, cancelled.ID,
		domain.RequestStatusPending, domain.RequestStatusCancelled)
	require.NoError(t, err)

	counts, err := pgSQL.RequestCounts(ctx, hospital.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, counts.Total)
	require.EqualValues(t, 1, counts.Pending)
	require.EqualValues(t, 1, counts.Fulfilled)

	total, err := pgSQL.TotalRequestCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
}
