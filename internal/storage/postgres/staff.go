// internal/storage/postgres/staff.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"salon-manager/internal/domain"
)

func (s *Storage) CreateStaff(ctx context.Context, st *domain.Staff) (string, error) {
	if st.SalaryStatus == nil {
		st.SalaryStatus = map[string]domain.PaymentEntry{}
	}
	statusJSON, err := json.Marshal(st.SalaryStatus)
	if err != nil {
		return "", fmt.Errorf("marshal salary status: %w", err)
	}

	id := newID()
	err = s.db.QueryRow(ctx, `
		INSERT INTO staff (id, full_name, salary, joining_date, password_hash, salary_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, id, st.FullName, st.Salary, st.JoiningDate, st.PasswordHash, statusJSON).Scan(&st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("create staff: %w", err)
	}
	st.ID = id
	return id, nil
}

func (s *Storage) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, full_name, salary, joining_date, password_hash, salary_status, created_at, updated_at
		FROM staff
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	staff := make([]domain.Staff, 0)
	for rows.Next() {
		st, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, *st)
	}
	return staff, rows.Err()
}

func (s *Storage) FindStaffByName(ctx context.Context, fullName string) (*domain.Staff, error) {
	return s.findStaff(ctx, "full_name = $1", fullName)
}

func (s *Storage) GetStaff(ctx context.Context, id string) (*domain.Staff, error) {
	return s.findStaff(ctx, "id = $1", id)
}

func (s *Storage) findStaff(ctx context.Context, cond string, arg any) (*domain.Staff, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, full_name, salary, joining_date, password_hash, salary_status, created_at, updated_at
		FROM staff
		WHERE `+cond+`
		LIMIT 1
	`, arg)
	st, err := scanStaff(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return st, nil
}

func scanStaff(row pgx.Row) (*domain.Staff, error) {
	var st domain.Staff
	var statusJSON []byte
	err := row.Scan(&st.ID, &st.FullName, &st.Salary, &st.JoiningDate, &st.PasswordHash, &statusJSON, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan staff: %w", err)
	}
	st.SalaryStatus = map[string]domain.PaymentEntry{}
	if len(statusJSON) > 0 {
		if err := json.Unmarshal(statusJSON, &st.SalaryStatus); err != nil {
			return nil, fmt.Errorf("unmarshal salary status: %w", err)
		}
	}
	return &st, nil
}

// UpdateStaffSalary overwrites only the supplied fields. Concurrent edits of
// the same staff member's salaryStatus are last-writer-wins; there is no
// optimistic locking.
func (s *Storage) UpdateStaffSalary(ctx context.Context, id string, salary *decimal.Decimal, salaryStatus map[string]domain.PaymentEntry) error {
	var statusJSON []byte
	if salaryStatus != nil {
		var err error
		statusJSON, err = json.Marshal(salaryStatus)
		if err != nil {
			return fmt.Errorf("marshal salary status: %w", err)
		}
	}

	_, err := s.db.Exec(ctx, `
		UPDATE staff SET
			salary = COALESCE($2, salary),
			salary_status = COALESCE($3, salary_status),
			updated_at = now()
		WHERE id = $1
	`, id, salary, statusJSON)
	if err != nil {
		return fmt.Errorf("update staff salary: %w", err)
	}
	return nil
}

func (s *Storage) UpdateStaffPassword(ctx context.Context, id, passwordHash string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE staff SET password_hash = $2, updated_at = now() WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update staff password: %w", err)
	}
	return nil
}

// DeleteStaff is unconditional: deleting an id that does not exist succeeds.
// Customer records that denormalize the staff name are not touched.
func (s *Storage) DeleteStaff(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}
