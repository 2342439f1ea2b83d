package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bloodlink/internal/auth"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/serrors"
	mockstorage "bloodlink/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newTestAuth(t *testing.T) (*mockstorage.MockStorage, *auth.Tokens, auth.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tokens := newTokensForTest(t, time.Hour)

	return st, tokens, auth.New(st, tokens)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("could not hash password: %v", err)
	}

	return hash
}

func TestLoginHospital(t *testing.T) {
	st, tokens, svc := newTestAuth(t)
	id := domain.HospitalID(uuid.New())

	st.EXPECT().HospitalByEmail(gomock.Any(), "care@stmarys.example").Return(&domain.Hospital{
		ID:           id,
		Email:        "care@stmarys.example",
		PasswordHash: mustHash(t, "s3cret"),
		Status:       domain.ApprovalStatusApproved,
	}, nil)

	token, hospital, err := svc.LoginHospital(context.Background(), " Care@StMarys.example ", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hospital.ID != id {
		t.Fatalf("unexpected hospital: %+v", hospital)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if identity.Subject != uuid.UUID(id) || identity.Role != domain.RoleHospital {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestLoginHospital_UnknownEmail(t *testing.T) {
	st, _, svc := newTestAuth(t)

	st.EXPECT().HospitalByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	_, _, err := svc.LoginHospital(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLoginHospital_WrongPassword(t *testing.T) {
	st, _, svc := newTestAuth(t)

	st.EXPECT().HospitalByEmail(gomock.Any(), "care@stmarys.example").Return(&domain.Hospital{
		PasswordHash: mustHash(t, "s3cret"),
		Status:       domain.ApprovalStatusApproved,
	}, nil)

	_, _, err := svc.LoginHospital(context.Background(), "care@stmarys.example", "wrong")
	if !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLoginHospital_NotApproved(t *testing.T) {
	st, _, svc := newTestAuth(t)

	// the approval gate fires before the password check, so even the correct
	// password gets forbidden
	for _, status := range []domain.ApprovalStatus{
		domain.ApprovalStatusUnverified,
		domain.ApprovalStatusRejected,
	} {
		st.EXPECT().HospitalByEmail(gomock.Any(), "care@stmarys.example").Return(&domain.Hospital{
			PasswordHash: mustHash(t, "s3cret"),
			Status:       status,
		}, nil)

		_, _, err := svc.LoginHospital(context.Background(), "care@stmarys.example", "s3cret")
		if !errors.Is(err, serrors.ErrForbidden) {
			t.Fatalf("status %s: expected ErrForbidden, got %v", status, err)
		}
	}
}

func TestLoginAdmin(t *testing.T) {
	st, tokens, svc := newTestAuth(t)
	id := domain.AdminID(uuid.New())

	st.EXPECT().AdminByEmail(gomock.Any(), "root@bloodlink.example").Return(&domain.Admin{
		ID:           id,
		Email:        "root@bloodlink.example",
		PasswordHash: mustHash(t, "s3cret"),
		Active:       true,
	}, nil)

	token, admin, err := svc.LoginAdmin(context.Background(), "root@bloodlink.example", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != id {
		t.Fatalf("unexpected admin: %+v", admin)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", identity.Role)
	}
}

func TestLoginAdmin_Disabled(t *testing.T) {
	st, _, svc := newTestAuth(t)

	st.EXPECT().AdminByEmail(gomock.Any(), "root@bloodlink.example").Return(&domain.Admin{
		PasswordHash: mustHash(t, "s3cret"),
		Active:       false,
	}, nil)

	_, _, err := svc.LoginAdmin(context.Background(), "root@bloodlink.example", "s3cret")
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestLoginAdmin_UnknownEmail(t *testing.T) {
	st, _, svc := newTestAuth(t)

	st.EXPECT().AdminByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	_, _, err := svc.LoginAdmin(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
