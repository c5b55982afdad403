package cmd

import (
	"bytes"
	"fmt"
	"os"

	"pantry-planner/core/kitchen/dataset"
	"pantry-planner/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedFile   string
	seedUpload bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a kitchen dataset into the database",
	Long: `Reads a YAML dataset of ingredients, recipes and inventories and writes it to the
database. Without --file the dataset is read from object storage. With --upload the
file is also copied to object storage. Existing records are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, logg, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var store storage.Client
		if seedFile == "" || seedUpload {
			if store, err = storage.NewClient(cfg.Storage); err != nil {
				return err
			}
		}

		var ds *dataset.Dataset
		if seedFile != "" {
			raw, err := os.ReadFile(seedFile)
			if err != nil {
				return fmt.Errorf("failed to read dataset: %w", err)
			}
			if ds, err = dataset.Parse(bytes.NewReader(raw)); err != nil {
				return err
			}
			if seedUpload {
				err := storage.Upload(ctx, store, cfg.Storage.Bucket, cfg.Storage.DatasetObject,
					bytes.NewReader(raw), int64(len(raw)), "application/yaml")
				if err != nil {
					return err
				}
				logg.Info("Dataset uploaded",
					zap.String("bucket", cfg.Storage.Bucket),
					zap.String("object", cfg.Storage.DatasetObject))
			}
		} else {
			ds, err = dataset.FromStorage(ctx, store, cfg.Storage.Bucket, cfg.Storage.DatasetObject)
			if err != nil {
				return err
			}
		}

		db, err := openDatabase(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		repos := newRepositories(db)

		report, err := dataset.Seed(ctx, ds, dataset.Writers{
			Ingredients: repos.catalog,
			Recipes:     repos.recipes,
			Inventories: repos.inventories,
		})
		if err != nil {
			return err
		}

		logg.Info("Seed completed",
			zap.Any("created", report.Created),
			zap.Any("skipped", report.Skipped))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Path to a YAML dataset")
	seedCmd.Flags().BoolVar(&seedUpload, "upload", false, "Also upload --file to object storage")
}
