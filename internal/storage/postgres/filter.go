// internal/storage/postgres/filter.go
package postgres

import (
	"sort"
	"strings"
	"time"

	"salon-manager/internal/domain"
)

// epochISO sorts records with no dateTime to the bottom.
const epochISO = "1970-01-01T00:00:00Z"

// filterCustomers applies the in-memory predicates: free-text search over the
// stringified amount and the lowercased staff name and payment mode, and the
// inclusive calendar-date range over each record's effective date.
func filterCustomers(customers []domain.CustomerTransaction, f domain.CustomerFilter) []domain.CustomerTransaction {
	out := customers
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		out = make([]domain.CustomerTransaction, 0, len(customers))
		for _, c := range customers {
			if strings.Contains(c.Amount.String(), search) ||
				strings.Contains(strings.ToLower(c.StaffName), search) ||
				strings.Contains(strings.ToLower(c.PaymentMode), search) {
				out = append(out, c)
			}
		}
	}
	if f.DateFrom == "" && f.DateTo == "" {
		return out
	}
	filtered := make([]domain.CustomerTransaction, 0, len(out))
	for _, c := range out {
		if withinDateRange(domain.EffectiveDate(c.Date, c.Time, c.CreatedAt), f.DateFrom, f.DateTo) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func filterExpenses(expenses []domain.ExpenseRecord, f domain.ExpenseFilter) []domain.ExpenseRecord {
	if f.DateFrom == "" && f.DateTo == "" {
		return expenses
	}
	filtered := make([]domain.ExpenseRecord, 0, len(expenses))
	for _, e := range expenses {
		if withinDateRange(domain.EffectiveDate(e.Date, e.Time, e.CreatedAt), f.DateFrom, f.DateTo) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// withinDateRange compares calendar dates as strings; the fixed YYYY-MM-DD
// width makes string order equal date order. Both bounds are inclusive.
func withinDateRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// sortCustomers orders latest-first by dateTime, falling back to the creation
// timestamp for records that predate the dateTime field.
func sortCustomers(customers []domain.CustomerTransaction) {
	sort.SliceStable(customers, func(i, j int) bool {
		return customerSortKey(customers[i]) > customerSortKey(customers[j])
	})
}

func customerSortKey(c domain.CustomerTransaction) string {
	if c.DateTime != "" {
		return c.DateTime
	}
	return c.CreatedAt.UTC().Format(time.RFC3339)
}

// sortExpenses orders latest-first by the literal ISO string. Lexicographic
// comparison is correct because the stored format is fixed width.
func sortExpenses(expenses []domain.ExpenseRecord) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenseSortKey(expenses[i]) > expenseSortKey(expenses[j])
	})
}

func expenseSortKey(e domain.ExpenseRecord) string {
	if e.DateTime != "" {
		return e.DateTime
	}
	return epochISO
}

// paginate slices out the requested page window. Limit <= 0 returns the whole
// result set with single-page metadata (used by the spreadsheet export).
func paginate[T any](records []T, page, limit int) ([]T, domain.Pagination) {
	total := len(records)
	if limit <= 0 {
		return records, domain.Pagination{
			CurrentPage: 1,
			TotalPages:  1,
			Total:       total,
			Limit:       total,
		}
	}
	lo, hi := domain.PageBounds(total, page, limit)
	return records[lo:hi], domain.NewPagination(total, page, limit)
}
