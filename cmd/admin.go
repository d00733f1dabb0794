package main

import (
	"context"

	"catalog/internal/config"
	"catalog/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adminCommand constructs the 'admin' subcommand that grants or revokes the
// admin flag on an existing user. Admin rights take effect on tokens issued
// after the change.
func adminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Grants or revokes admin privileges for a user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			username, _ := cmd.Flags().GetString("username")
			revoke, _ := cmd.Flags().GetBool("revoke")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := strg.SetAdmin(ctx, username, !revoke)
			if err != nil {
				logger.Fatal(ctx, "could not update admin flag", zap.Error(err))
			}
			if user == nil {
				logger.Fatal(ctx, "user not found", zap.String("username", username))
			}

			logger.Info(ctx, "admin flag updated",
				zap.String("username", user.Username),
				zap.Bool("admin", user.Admin))
		},
	}

	cmd.Flags().String("username", "", "Username of the account to update")
	cmd.Flags().Bool("revoke", false, "Revoke admin privileges instead of granting them")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
