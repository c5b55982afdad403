package cmd

import (
	"fmt"
	"os"

	"pantry-planner/core/kitchen/dataset"
	"pantry-planner/core/reconcile"
	"pantry-planner/core/utils"
	"pantry-planner/feature/shopping"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping-list",
	Short: "Print the shopping list for a recipe and an inventory",
	Long: `Reconciles a recipe against an inventory. Records come from the database, or
from a YAML dataset with --dataset. Ownership and visibility are not checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		recipeID, _ := cmd.Flags().GetString("recipe")
		inventoryID, _ := cmd.Flags().GetString("inventory")
		datasetPath, _ := cmd.Flags().GetString("dataset")
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		cfg, logg, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var planner *reconcile.Planner
		if datasetPath != "" {
			ds, err := dataset.FromFile(datasetPath)
			if err != nil {
				return err
			}
			stores, err := ds.Memory(ctx)
			if err != nil {
				return err
			}
			planner = reconcile.NewPlanner(stores.Recipes, stores.Inventories)
		} else {
			db, err := openDatabase(cfg.Database)
			if err != nil {
				return fmt.Errorf("database connection required: %w", err)
			}
			planner = newRepositories(db).planner()
		}

		list, err := planner.Plan(ctx, recipeID, inventoryID)
		if err != nil {
			return err
		}

		currency := cfg.Server.Currency
		if out != "" {
			if err := saveExport(out, list, format, currency); err != nil {
				return err
			}
			logg.Info("Shopping list saved", zap.String("file", out), zap.String("format", format))
		}

		fmt.Printf("\n=== Shopping list: %s / %s ===\n", list.RecipeName, list.InventoryName)
		for _, item := range list.Items {
			fmt.Printf("%-24s %10s %-8s %s\n",
				item.Ingredient.Name,
				utils.FormatQuantity(item.Quantity),
				item.Ingredient.Unit,
				utils.FormatMoney(item.Price, currency))
		}
		fmt.Printf("Total: %s\n", utils.FormatMoney(list.Total, currency))

		logg.Info("Shopping list generated",
			zap.String("recipe", list.RecipeID),
			zap.String("inventory", list.InventoryID),
			zap.Int("lines", list.Summary.Lines),
			zap.Int("short", list.Summary.Short),
			zap.String("total", utils.FormatPrice(list.Total)))
		return nil
	},
}

// saveExport writes list to path and reports a failed close.
func saveExport(path string, list *reconcile.ShoppingList, format, currency string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return shopping.Export(f, list, format, currency)
}

func init() {
	RootCmd.AddCommand(shoppingCmd)
	shoppingCmd.Flags().String("recipe", "", "Recipe id")
	shoppingCmd.Flags().String("inventory", "", "Inventory id")
	shoppingCmd.Flags().String("dataset", "", "Read records from a YAML dataset instead of the database")
	shoppingCmd.Flags().String("format", shopping.FormatCSV, "Export format for --out (csv or xlsx)")
	shoppingCmd.Flags().String("out", "", "Also write the list to this file")
	_ = shoppingCmd.MarkFlagRequired("recipe")
	_ = shoppingCmd.MarkFlagRequired("inventory")
}
