package main

import (
	"context"
	"fmt"

	"catalog/internal/auth"
	"catalog/internal/config"
	"catalog/pkg/domain"
	"catalog/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed access
// token for a given user, mainly for local testing against the API.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates an access token for the given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			subject, _ := cmd.Flags().GetString("subject")
			fresh, _ := cmd.Flags().GetBool("fresh")
			admin, _ := cmd.Flags().GetBool("admin")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a user UUID", zap.Error(err))
			}

			issuer := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
			signed, err := issuer.IssueAccess(&domain.User{
				ID:    domain.UserID(userID),
				Admin: admin,
			}, fresh)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "User ID to issue the token for")
	cmd.Flags().Bool("fresh", false, "Mark the token as fresh")
	cmd.Flags().Bool("admin", false, "Set the admin claim")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
