package storage

import (
	"context"

	"bloodlink/pkg/domain"
)

// AdminStorage defines persistence operations for admin accounts. Admins are
// provisioned out of band (see the create-admin command); there is no
// self-service registration.
type AdminStorage interface {
	// StoreAdmin inserts an admin and returns the stored row. A duplicate
	// email fails with ErrDuplicateKey.
	StoreAdmin(ctx context.Context, admin domain.Admin) (*domain.Admin, error)
	// AdminByEmail fetches an admin by login email. Returns nil when not
	// found.
	AdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
