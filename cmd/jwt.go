package main

import (
	"context"
	"fmt"
	"time"

	"backma/internal/config"
	"backma/pkg/auth"
	"backma/pkg/domain"
	"backma/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that prints an RS256 access token
// for a user id and role, signed with the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID and role",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			id, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a user id", zap.Error(err))
			}
			if !domain.Role(role).Valid() {
				logger.Fatal(ctx, "unknown role", zap.String("role", role))
			}

			signer, err := auth.NewSigner(cfg.JWT.PrivateKey, cfg.JWT.Issuer, cfg.JWT.TTL)
			if err != nil {
				logger.Fatal(ctx, "could not create token signer", zap.Error(err))
			}
			signed, _, err := signer.Sign(domain.Actor{ID: domain.UserID(id), Role: domain.Role(role)}, TTL)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().String("role", string(domain.RoleAdmin), "Role claim: admin, publisher or advertiser")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
