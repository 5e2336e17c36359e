// internal/storage/storage.go
package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"salon-manager/internal/domain"
)

type CredentialStorage interface {
	// GetCredential returns nil, nil when the singleton document is missing.
	GetCredential(ctx context.Context) (*domain.Credential, error)
	UpdateCredential(ctx context.Context, passwordHash string) error
	// SeedCredential inserts the singleton if it does not exist yet.
	SeedCredential(ctx context.Context, passwordHash string) error
}

type StaffStorage interface {
	CreateStaff(ctx context.Context, s *domain.Staff) (string, error)
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	// FindStaffByName matches the full name exactly; nil, nil when absent.
	FindStaffByName(ctx context.Context, fullName string) (*domain.Staff, error)
	GetStaff(ctx context.Context, id string) (*domain.Staff, error)
	// UpdateStaffSalary overwrites only the supplied fields. The salaryStatus
	// map is replaced wholesale; callers read-modify-write to edit one month.
	UpdateStaffSalary(ctx context.Context, id string, salary *decimal.Decimal, salaryStatus map[string]domain.PaymentEntry) error
	UpdateStaffPassword(ctx context.Context, id, passwordHash string) error
	DeleteStaff(ctx context.Context, id string) error
}

type CustomerStorage interface {
	CreateCustomer(ctx context.Context, c *domain.CustomerTransaction) (string, error)
	// ListCustomers applies exact-match filters in the query and the search
	// text and date range in memory. Limit <= 0 disables pagination.
	ListCustomers(ctx context.Context, f domain.CustomerFilter) (*domain.CustomerPage, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type ExpenseStorage interface {
	CreateExpense(ctx context.Context, e *domain.ExpenseRecord) (string, error)
	ListExpenses(ctx context.Context, f domain.ExpenseFilter) (*domain.ExpensePage, error)
	UpdateExpense(ctx context.Context, id string, e *domain.ExpenseRecord) error
	DeleteExpense(ctx context.Context, id string) error
}

type PersonStorage interface {
	CreatePerson(ctx context.Context, p *domain.Person) (string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
