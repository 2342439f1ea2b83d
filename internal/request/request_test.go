package request_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bloodlink/internal/request"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/metrics"
	"bloodlink/pkg/serrors"
	"bloodlink/pkg/storage"
	mockstorage "bloodlink/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, request.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := request.New(st, metrics.New(prometheus.NewRegistry()), request.Options{NotifyMaxAttempts: 3})

	return ctrl, st, svc
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func approvedHospital(id domain.HospitalID) *domain.Hospital {
	return &domain.Hospital{ID: id, Status: domain.ApprovalStatusApproved}
}

func TestRequest_Create(t *testing.T) {
	ctrl, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())

	st.EXPECT().HospitalByID(gomock.Any(), hospitalID).Return(approvedHospital(hospitalID), nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.BloodRequest) (*domain.BloodRequest, error) {
				if r.Status != domain.RequestStatusPending {
					t.Fatalf("expected PENDING status, got %s", r.Status)
				}
				r.ID = domain.RequestID(uuid.New())

				return &r, nil
			},
		)
		tx.EXPECT().Donors(gomock.Any(), storage.DonorFilter{
			BloodType:   domain.BloodTypeOPos,
			ActiveOnly:  true,
			OldestFirst: true,
		}).Return([]domain.Donor{{Name: "a"}, {Name: "b"}, {Name: "c"}}, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	stored, eligible, err := svc.Create(context.Background(), hospitalID, request.CreateParams{
		BloodType: "O+",
		Urgency:   "HIGH",
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != domain.RequestStatusPending {
		t.Fatalf("expected PENDING request, got %+v", stored)
	}
	if eligible != 3 {
		t.Fatalf("expected 3 eligible donors, got %d", eligible)
	}
}

func TestRequest_Create_Validation(t *testing.T) {
	_, _, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())

	cases := []struct {
		name   string
		params request.CreateParams
	}{
		{"invalid blood type", request.CreateParams{BloodType: "Z+", Urgency: "HIGH", Quantity: 1}},
		{"invalid urgency", request.CreateParams{BloodType: "O+", Urgency: "WHENEVER", Quantity: 1}},
		{"zero quantity", request.CreateParams{BloodType: "O+", Urgency: "HIGH", Quantity: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Create(context.Background(), hospitalID, tc.params)
			if !errors.Is(err, serrors.ErrBadRequest) {
				t.Fatalf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestRequest_Create_UnapprovedHospital(t *testing.T) {
	_, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())

	st.EXPECT().HospitalByID(gomock.Any(), hospitalID).Return(&domain.Hospital{
		ID:     hospitalID,
		Status: domain.ApprovalStatusUnverified,
	}, nil)

	_, _, err := svc.Create(context.Background(), hospitalID, request.CreateParams{
		BloodType: "O+",
		Urgency:   "HIGH",
		Quantity:  1,
	})
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequest_Create_RollsBackOnJobFailure(t *testing.T) {
	ctrl, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())

	st.EXPECT().HospitalByID(gomock.Any(), hospitalID).Return(approvedHospital(hospitalID), nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.BloodRequest) (*domain.BloodRequest, error) {
				return &r, nil
			},
		)
		tx.EXPECT().Donors(gomock.Any(), gomock.Any()).Return(nil, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))
	})

	_, _, err := svc.Create(context.Background(), hospitalID, request.CreateParams{
		BloodType: "O+",
		Urgency:   "LOW",
		Quantity:  1,
	})
	if err == nil {
		t.Fatalf("expected error from AddJob")
	}
}

func TestRequest_MarkFulfilled(t *testing.T) {
	_, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())
	id := domain.RequestID(uuid.New())

	st.EXPECT().RequestByID(gomock.Any(), id).Return(&domain.BloodRequest{
		ID:         id,
		HospitalID: hospitalID,
		Status:     domain.RequestStatusPending,
	}, nil)
	st.EXPECT().TransitionRequest(gomock.Any(), id,
		domain.RequestStatusPending, domain.RequestStatusFulfilled).
		Return(&domain.BloodRequest{ID: id, HospitalID: hospitalID, Status: domain.RequestStatusFulfilled}, nil)

	updated, err := svc.MarkFulfilled(context.Background(), hospitalID, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.RequestStatusFulfilled {
		t.Fatalf("expected FULFILLED, got %s", updated.Status)
	}
}

func TestRequest_MarkFulfilled_Idempotent(t *testing.T) {
	_, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())
	id := domain.RequestID(uuid.New())

	// already fulfilled: no transition attempted
	st.EXPECT().RequestByID(gomock.Any(), id).Return(&domain.BloodRequest{
		ID:         id,
		HospitalID: hospitalID,
		Status:     domain.RequestStatusFulfilled,
	}, nil)
	st.EXPECT().TransitionRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	updated, err := svc.MarkFulfilled(context.Background(), hospitalID, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.RequestStatusFulfilled {
		t.Fatalf("expected FULFILLED, got %s", updated.Status)
	}
}

func TestRequest_MarkFulfilled_AfterCancel(t *testing.T) {
	_, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())
	id := domain.RequestID(uuid.New())

	st.EXPECT().RequestByID(gomock.Any(), id).Return(&domain.BloodRequest{
		ID:         id,
		HospitalID: hospitalID,
		Status:     domain.RequestStatusCancelled,
	}, nil)

	_, err := svc.MarkFulfilled(context.Background(), hospitalID, id)
	if !errors.Is(err, serrors.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestRequest_MarkCancelled_WrongHospital(t *testing.T) {
	_, st, svc := newTestService(t)
	id := domain.RequestID(uuid.New())

	st.EXPECT().RequestByID(gomock.Any(), id).Return(&domain.BloodRequest{
		ID:         id,
		HospitalID: domain.HospitalID(uuid.New()),
		Status:     domain.RequestStatusPending,
	}, nil)

	_, err := svc.MarkCancelled(context.Background(), domain.HospitalID(uuid.New()), id)
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequest_Transition_NotFound(t *testing.T) {
	_, st, svc := newTestService(t)
	id := domain.RequestID(uuid.New())

	st.EXPECT().RequestByID(gomock.Any(), id).Return(nil, nil)

	_, err := svc.MarkCancelled(context.Background(), domain.HospitalID(uuid.New()), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRequest_Transition_ConcurrentSameTarget(t *testing.T) {
	_, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())
	id := domain.RequestID(uuid.New())

	// pending at first read, but another fulfill wins the update race
	st.EXPECT().RequestByID(gomock.Any(), id).Return(&domain.BloodRequest{
		ID:         id,
		HospitalID: hospitalID,
		Status:     domain.RequestStatusPending,
	}, nil)
	st.EXPECT().TransitionRequest(gomock.Any(), id,
		domain.RequestStatusPending, domain.RequestStatusFulfilled).Return(nil, nil)
	st.EXPECT().RequestByID(gomock.Any(), id).Return(&domain.BloodRequest{
		ID:         id,
		HospitalID: hospitalID,
		Status:     domain.RequestStatusFulfilled,
	}, nil)

	updated, err := svc.MarkFulfilled(context.Background(), hospitalID, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.RequestStatusFulfilled {
		t.Fatalf("expected FULFILLED, got %s", updated.Status)
	}
}

func TestRequest_Transition_ConcurrentOtherTarget(t *testing.T) {
	_, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())
	id := domain.RequestID(uuid.New())

	// pending at first read, but a concurrent cancel wins
	st.EXPECT().RequestByID(gomock.Any(), id).Return(&domain.BloodRequest{
		ID:         id,
		HospitalID: hospitalID,
		Status:     domain.RequestStatusPending,
	}, nil)
	st.EXPECT().TransitionRequest(gomock.Any(), id,
		domain.RequestStatusPending, domain.RequestStatusFulfilled).Return(nil, nil)
	st.EXPECT().RequestByID(gomock.Any(), id).Return(&domain.BloodRequest{
		ID:         id,
		HospitalID: hospitalID,
		Status:     domain.RequestStatusCancelled,
	}, nil)

	_, err := svc.MarkFulfilled(context.Background(), hospitalID, id)
	if !errors.Is(err, serrors.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestRequest_ListByHospital(t *testing.T) {
	_, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)

	next := cursorTime.Add(-time.Minute)
	st.EXPECT().HospitalRequests(gomock.Any(), hospitalID,
		domain.RequestStatusPending, cursorTime, uint(10)).
		Return(storage.RequestPage{
			Requests:   []domain.BloodRequest{{Quantity: 1}},
			NextCursor: &next,
		}, nil)

	requests, nextCursor, err := svc.ListByHospital(context.Background(), hospitalID, request.ListParams{
		Status: "PENDING",
		Cursor: cursorTime.Format(time.RFC3339),
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if nextCursor == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestRequest_ListByHospital_InvalidParams(t *testing.T) {
	_, _, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())

	_, _, err := svc.ListByHospital(context.Background(), hospitalID, request.ListParams{Status: "DONE"})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for status, got %v", err)
	}

	_, _, err = svc.ListByHospital(context.Background(), hospitalID, request.ListParams{Cursor: "not-a-time"})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for cursor, got %v", err)
	}
}

func TestRequest_HospitalStats(t *testing.T) {
	_, st, svc := newTestService(t)
	hospitalID := domain.HospitalID(uuid.New())

	st.EXPECT().RequestCounts(gomock.Any(), hospitalID).
		Return(storage.RequestCounts{Total: 5, Pending: 2, Fulfilled: 3}, nil)

	counts, err := svc.HospitalStats(context.Background(), hospitalID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.Total != 5 || counts.Pending != 2 || counts.Fulfilled != 3 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}
