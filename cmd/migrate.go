package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if _, err := openDatabase(cfg.Database); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logg.Info("Database schema is up to date", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
