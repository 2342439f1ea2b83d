package main

import (
	"context"
	"errors"
	"strings"

	"bloodlink/internal/auth"
	"bloodlink/internal/config"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/logger"
	"bloodlink/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// createAdminCommand constructs the 'create-admin' subcommand that provisions
// an admin account. There is no self-service admin registration, so this is
// the only way to bootstrap one.
func createAdminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Creates an admin account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			hash, err := auth.HashPassword(password)
			if err != nil {
				logger.Fatal(ctx, "could not hash password", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			admin, err := strg.StoreAdmin(ctx, domain.Admin{
				Name:         name,
				Email:        strings.ToLower(strings.TrimSpace(email)),
				PasswordHash: hash,
				Active:       true,
			})
			if err != nil {
				if errors.Is(err, storage.ErrDuplicateKey) {
					logger.Fatal(ctx, "an admin with this email already exists", zap.String("email", email))
				}
				logger.Fatal(ctx, "could not store admin", zap.Error(err))
			}

			logger.Info(ctx, "admin created", zap.String("id", admin.ID.String()), zap.String("email", admin.Email))
		},
	}

	cmd.Flags().String("name", "", "admin display name")
	cmd.Flags().String("email", "", "admin login email")
	cmd.Flags().String("password", "", "admin login password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
