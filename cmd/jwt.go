package main

import (
	"context"
	"fmt"
	"linkify/internal/api/handler/v1handler"
	"linkify/internal/config"
	"linkify/pkg/domain"
	"linkify/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand. It prints a bearer token for
// the admin API that acts as the given page owner.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues an admin API token for a page owner",
		Run: func(cmd *cobra.Command, args []string) {
			owner, _ := cmd.Flags().GetString("owner")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			signed, err := v1handler.SignOwnerToken(cfg.JWT.PrivateKey, domain.Owner(owner), ttl, time.Now())
			if err != nil {
				logger.Fatal(context.Background(), "could not issue token",
					zap.String("owner", owner), zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("owner", "", "Page owner the token acts as")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime (e.g. 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
