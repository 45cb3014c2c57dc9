package main

import (
	"context"
	"os"

	"backma/internal/accounts"
	"backma/internal/config"
	"backma/pkg/domain"
	"backma/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// createAdminCommand constructs the 'create-admin' subcommand that creates the
// first admin account. The password is read from BACKMA_ADMIN_PASSWORD when
// the flag is empty.
func createAdminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Creates an admin account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("BACKMA_ADMIN_PASSWORD")
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := accounts.New(strg, nil, accounts.Options{}).CreateUser(ctx, accounts.NewUser{
				Email:    email,
				FullName: name,
				Role:     domain.RoleAdmin,
				Password: password,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create admin", zap.Error(err))
			}

			logger.Info(ctx, "admin created", zap.String("userID", user.ID.String()), zap.String("email", user.Email))
		},
	}

	cmd.Flags().String("email", "", "Admin email")
	cmd.Flags().String("name", "Administrator", "Admin full name")
	cmd.Flags().String("password", "", "Admin password, defaults to $BACKMA_ADMIN_PASSWORD")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
