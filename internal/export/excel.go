// internal/export/excel.go
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"salon-manager/internal/domain"
)

// Customers builds a spreadsheet of customer transactions, latest first as
// supplied, one row per record.
func Customers(customers []domain.CustomerTransaction) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := writeRow(f, sheet, 1, []any{"Date", "Time", "Staff", "Payment Mode", "Amount"}); err != nil {
		return nil, err
	}
	for i, c := range customers {
		row := []any{c.Date, c.Time, c.StaffName, c.PaymentMode, c.Amount.InexactFloat64()}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Expenses builds a spreadsheet of expense records with a totals row at the
// bottom. Items are flattened into a single "Name (amount)" list per row.
func Expenses(expenses []domain.ExpenseRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := writeRow(f, sheet, 1, []any{"Date", "Time", "Items", "Total"}); err != nil {
		return nil, err
	}
	total := decimal.Zero
	for i, e := range expenses {
		row := []any{e.Date, e.Time, flattenItems(e.Items), e.TotalAmount.InexactFloat64()}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
		total = total.Add(e.TotalAmount)
	}
	return f, writeRow(f, sheet, len(expenses)+2, []any{"", "", "Total", total.InexactFloat64()})
}

func flattenItems(items []domain.ExpenseItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (%s)", item.Name, item.Amount.String()))
	}
	return strings.Join(parts, ", ")
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
