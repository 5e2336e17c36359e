package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"salon-manager/internal/domain"
)

func amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCustomersWorkbook(t *testing.T) {
	customers := []domain.CustomerTransaction{
		{
			Amount:      amount("250.5"),
			PaymentMode: "Cash",
			StaffName:   "Anita Rao",
			Date:        "2024-01-15",
			Time:        "14:30",
			CreatedAt:   time.Now(),
		},
		{
			Amount:      amount("100"),
			PaymentMode: "Online",
			StaffName:   "Priya Sharma",
			Date:        "2024-01-14",
			Time:        "10:00",
			CreatedAt:   time.Now(),
		},
	}

	book, err := Customers(customers)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("row count: got %d, want header + 2", len(rows))
	}

	header := []string{"Date", "Time", "Staff", "Payment Mode", "Amount"}
	for i, want := range header {
		if rows[0][i] != want {
			t.Fatalf("header col %d: got %q, want %q", i, rows[0][i], want)
		}
	}
	if rows[1][0] != "2024-01-15" || rows[1][2] != "Anita Rao" || rows[1][4] != "250.5" {
		t.Fatalf("first record row: %v", rows[1])
	}
}

func TestExpensesWorkbookHasTotalsRow(t *testing.T) {
	expenses := []domain.ExpenseRecord{
		{
			Date: "2024-02-01",
			Time: "09:00",
			Items: []domain.ExpenseItem{
				{Name: "Shampoo", Amount: amount("100")},
				{Name: "Gloves", Amount: amount("50.5")},
			},
			TotalAmount: amount("150.5"),
		},
		{
			Date:        "2024-02-02",
			Time:        "09:00",
			Items:       []domain.ExpenseItem{{Name: "Towels", Amount: amount("49.5")}},
			TotalAmount: amount("49.5"),
		},
	}

	book, err := Expenses(expenses)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("row count: got %d, want header + 2 records + totals", len(rows))
	}
	if rows[1][2] != "Shampoo (100), Gloves (50.5)" {
		t.Fatalf("flattened items: %q", rows[1][2])
	}

	totals := rows[3]
	if totals[2] != "Total" || totals[3] != "200" {
		t.Fatalf("totals row: %v", totals)
	}
}

func TestEmptyCustomersWorkbookKeepsHeader(t *testing.T) {
	book, err := Customers(nil)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("row count: got %d, want header only", len(rows))
	}
}
