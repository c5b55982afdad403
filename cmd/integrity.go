package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"pantry-planner/core/database"
	"pantry-planner/core/storage"
	"pantry-planner/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Run the storage, schema and data checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := newIntegrityService()
		if err != nil {
			return err
		}

		report := svc.Run(cmd.Context())
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			filename := fmt.Sprintf("integrity_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Integrity report saved", zap.String("file", filename))
		}
		for name, part := range report {
			logg.Info("Integrity check", zap.String("check", name), zap.Any("report", part))
		}
		return nil
	},
}

var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check the dataset bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, logg, err := newIntegrityService()
		if err != nil {
			return err
		}

		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return err
		}
		switch {
		case report.Status == "ok":
			logg.Info("Storage is intact.", zap.String("bucket", report.Bucket))
		case !report.BucketExists && fixFlag:
			if err := svc.FixStorage(ctx); err != nil {
				return err
			}
			logg.Info("Bucket created. Run seed --upload to store the dataset.")
		case !report.BucketExists:
			logg.Warn("Bucket is missing. Run with --fix to create it.", zap.String("bucket", report.Bucket))
		default:
			logg.Warn("Dataset object is missing", zap.String("object", report.DatasetObject))
		}
		return nil
	},
}

var schemaCheckCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema against the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := newIntegrityService()
		if err != nil {
			return err
		}

		report, err := svc.CheckSchema()
		if err != nil {
			return err
		}
		if report.Matched {
			logg.Info("Database schema matches the models.")
			return nil
		}
		for table, tbl := range report.Tables {
			if tbl.Status != "ok" {
				logg.Warn("Table mismatch",
					zap.String("table", table),
					zap.String("status", tbl.Status),
					zap.Strings("missing_columns", tbl.MissingColumns))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
		return nil
	},
}

var dataCheckCmd = &cobra.Command{
	Use:   "data",
	Short: "Check stored references between recipes, inventories and the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := newIntegrityService()
		if err != nil {
			return err
		}

		report, err := svc.CheckData(cmd.Context())
		if err != nil {
			return err
		}
		if report.Matched {
			logg.Info("Stored data is consistent.")
			return nil
		}
		logg.Warn("Data inconsistencies found",
			zap.Any("dangling_recipe_lines", report.DanglingRecipeLines),
			zap.Any("dangling_inventory_items", report.DanglingInventoryItems),
			zap.Any("orphan_recipe_lines", report.OrphanRecipeLines),
			zap.Any("duplicate_lines", report.DuplicateLines))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCheckCmd, schemaCheckCmd, dataCheckCmd)

	integrityCmd.Flags().Bool("json", false, "Save the combined report as JSON")
	storageCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket if missing")
}

// newIntegrityService connects whatever is reachable. Checks against a
// missing backend report an error instead of aborting.
func newIntegrityService() (*integrity.Service, *zap.Logger, error) {
	cfg, logg, err := loadEnvironment()
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Storage client unavailable", zap.Error(err))
	}

	var db *gorm.DB
	// Not migrated, so the schema check sees the live tables.
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	return integrity.NewService(store, cfg.Storage.Bucket, cfg.Storage.DatasetObject, logg, db), logg, nil
}
