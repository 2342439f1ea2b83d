package main

import (
	"context"
	"fmt"
	"time"

	"bloodlink/internal/auth"
	"bloodlink/internal/config"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// jwtCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given subject and role using the configured private key. Useful for
// local testing and for bootstrapping admin access.
func jwtCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for a given subject and role",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			rawSubject, _ := cmd.Flags().GetString("subject")
			rawRole, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			subject, err := uuid.Parse(rawSubject)
			if err != nil {
				logger.Fatal(ctx, "invalid subject, expected a UUID", zap.Error(err))
			}
			role, ok := domain.ParseRole(rawRole)
			if !ok {
				logger.Fatal(ctx, "invalid role", zap.String("role", rawRole))
			}

			tokens, err := auth.NewTokens(auth.TokenOptions{
				PrivateKey: cfg.JWT.PrivateKey,
				PublicKey:  cfg.JWT.PublicKey,
				TTL:        ttl,
			})
			if err != nil {
				logger.Fatal(ctx, "could not load JWT keys", zap.Error(err))
			}

			signed, err := tokens.Issue(domain.Identity{Subject: subject, Role: role})
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (the hospital or admin ID)")
	cmd.Flags().String("role", string(domain.RoleAdmin), "token role (hospital or admin)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
