package cmd

import (
	"fmt"
	"time"

	"pantry-planner/core/middleware/identity"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		cfg, _, err := loadEnvironment()
		if err != nil {
			return err
		}
		if !cfg.Server.TokenAuth() {
			return fmt.Errorf("SERVER_JWT_SECRET is not set")
		}

		token, err := identity.IssueToken(cfg.Server.JWTSecret, user, ttl)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().String("user", "", "User id to put in the token subject")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
}
