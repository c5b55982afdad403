package shopping

import (
	"encoding/csv"
	"fmt"
	"io"

	"pantry-planner/core/reconcile"
	"pantry-planner/core/utils"

	"github.com/xuri/excelize/v2"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var exportHeader = []string{"Ingredient", "Unit", "Quantity", "Unit price", "Price"}

// ContentType returns the MIME type of format.
func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Export writes list to w in format. The last row holds the total.
func Export(w io.Writer, list *reconcile.ShoppingList, format, currency string) error {
	switch format {
	case FormatCSV, "":
		return writeCSV(w, list, currency)
	case FormatXLSX:
		return writeXLSX(w, list, currency)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func exportRows(list *reconcile.ShoppingList, currency string) [][]string {
	rows := make([][]string, 0, len(list.Items)+1)
	for _, item := range list.Items {
		rows = append(rows, []string{
			item.Ingredient.Name,
			item.Ingredient.Unit,
			utils.FormatQuantity(item.Quantity),
			utils.FormatPrice(item.Ingredient.UnitPrice),
			utils.FormatPrice(item.Price),
		})
	}
	return append(rows, []string{"Total", "", "", "", utils.FormatMoney(list.Total, currency)})
}

func writeCSV(w io.Writer, list *reconcile.ShoppingList, currency string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	if err := writer.WriteAll(exportRows(list, currency)); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func writeXLSX(w io.Writer, list *reconcile.ShoppingList, currency string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Shopping list"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	rows := append([][]string{exportHeader}, exportRows(list, currency)...)
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "E", 12)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
