// internal/storage/postgres/ledger.go
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"salon-manager/internal/domain"
)

// === CustomerStorage ===

func (s *Storage) CreateCustomer(ctx context.Context, c *domain.CustomerTransaction) (string, error) {
	id := newID()
	err := s.db.QueryRow(ctx, `
		INSERT INTO customers (id, amount, payment_mode, staff_name, tx_date, tx_time, date_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, id, c.Amount, c.PaymentMode, c.StaffName, c.Date, c.Time, c.DateTime).Scan(&c.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	c.ID = id
	return id, nil
}

// ListCustomers pushes the exact-match predicates into the query and fetches
// every matching row; free-text search, the date range, the dateTime sort and
// the page window are then applied in memory. The store cannot combine
// arbitrary range/text predicates with the exact-match ones in one request,
// so correctness is bought with O(n) work per call. Acceptable for a single
// salon's history, nothing more.
func (s *Storage) ListCustomers(ctx context.Context, f domain.CustomerFilter) (*domain.CustomerPage, error) {
	query := `
		SELECT id, amount, payment_mode, staff_name, tx_date, tx_time, date_time, created_at
		FROM customers`
	var conds []string
	var args []any
	if f.PaymentMode != "" {
		args = append(args, f.PaymentMode)
		conds = append(conds, fmt.Sprintf("payment_mode = $%d", len(args)))
	}
	if f.StaffName != "" {
		args = append(args, f.StaffName)
		conds = append(conds, fmt.Sprintf("staff_name = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.CustomerTransaction, 0)
	for rows.Next() {
		var c domain.CustomerTransaction
		if err := rows.Scan(&c.ID, &c.Amount, &c.PaymentMode, &c.StaffName, &c.Date, &c.Time, &c.DateTime, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	customers = filterCustomers(customers, f)
	sortCustomers(customers)
	page, pagination := paginate(customers, f.Page, f.Limit)
	return &domain.CustomerPage{Customers: page, Pagination: pagination}, nil
}

func (s *Storage) DeleteCustomer(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// === ExpenseStorage ===

func (s *Storage) CreateExpense(ctx context.Context, e *domain.ExpenseRecord) (string, error) {
	itemsJSON, err := json.Marshal(e.Items)
	if err != nil {
		return "", fmt.Errorf("marshal items: %w", err)
	}

	id := newID()
	err = s.db.QueryRow(ctx, `
		INSERT INTO expenses (id, exp_date, exp_time, date_time, items, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, id, e.Date, e.Time, e.DateTime, itemsJSON, e.TotalAmount).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("create expense: %w", err)
	}
	e.ID = id
	return id, nil
}

func (s *Storage) ListExpenses(ctx context.Context, f domain.ExpenseFilter) (*domain.ExpensePage, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, exp_date, exp_time, date_time, items, total_amount, created_at, updated_at
		FROM expenses
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.ExpenseRecord, 0)
	for rows.Next() {
		var e domain.ExpenseRecord
		var itemsJSON []byte
		if err := rows.Scan(&e.ID, &e.Date, &e.Time, &e.DateTime, &itemsJSON, &e.TotalAmount, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if len(itemsJSON) > 0 {
			if err := json.Unmarshal(itemsJSON, &e.Items); err != nil {
				return nil, fmt.Errorf("unmarshal items: %w", err)
			}
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	expenses = filterExpenses(expenses, f)
	sortExpenses(expenses)
	page, pagination := paginate(expenses, f.Page, f.Limit)
	return &domain.ExpensePage{Expenses: page, Pagination: pagination}, nil
}

func (s *Storage) UpdateExpense(ctx context.Context, id string, e *domain.ExpenseRecord) error {
	itemsJSON, err := json.Marshal(e.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		UPDATE expenses SET
			exp_date = $2, exp_time = $3, date_time = $4, items = $5, total_amount = $6,
			updated_at = now()
		WHERE id = $1
	`, id, e.Date, e.Time, e.DateTime, itemsJSON, e.TotalAmount)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (s *Storage) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
