package handler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"salon-manager/internal/domain"
)

// fakeStore is an in-memory implementation of the storage interfaces. Its
// list pipelines mirror the real store: exact-match filters first, then
// in-memory search/date-range, then sort and page window.
type fakeStore struct {
	cred      *domain.Credential
	staff     []domain.Staff
	customers []domain.CustomerTransaction
	expenses  []domain.ExpenseRecord
	persons   []domain.Person
	nextID    int
	pingErr   error
}

func (f *fakeStore) id() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStore) GetCredential(context.Context) (*domain.Credential, error) {
	return f.cred, nil
}

func (f *fakeStore) UpdateCredential(_ context.Context, hash string) error {
	f.cred = &domain.Credential{PasswordHash: hash, UpdatedAt: time.Now()}
	return nil
}

func (f *fakeStore) SeedCredential(_ context.Context, hash string) error {
	if f.cred == nil {
		f.cred = &domain.Credential{PasswordHash: hash, UpdatedAt: time.Now()}
	}
	return nil
}

func (f *fakeStore) CreateStaff(_ context.Context, st *domain.Staff) (string, error) {
	if st.SalaryStatus == nil {
		st.SalaryStatus = map[string]domain.PaymentEntry{}
	}
	st.ID = f.id()
	st.CreatedAt = time.Now()
	st.UpdatedAt = st.CreatedAt
	f.staff = append(f.staff, *st)
	return st.ID, nil
}

func (f *fakeStore) ListStaff(context.Context) ([]domain.Staff, error) {
	out := append([]domain.Staff(nil), f.staff...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) FindStaffByName(_ context.Context, fullName string) (*domain.Staff, error) {
	for i := range f.staff {
		if f.staff[i].FullName == fullName {
			st := f.staff[i]
			return &st, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetStaff(_ context.Context, id string) (*domain.Staff, error) {
	for i := range f.staff {
		if f.staff[i].ID == id {
			st := f.staff[i]
			return &st, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateStaffSalary(_ context.Context, id string, salary *decimal.Decimal, salaryStatus map[string]domain.PaymentEntry) error {
	for i := range f.staff {
		if f.staff[i].ID == id {
			if salary != nil {
				f.staff[i].Salary = *salary
			}
			if salaryStatus != nil {
				f.staff[i].SalaryStatus = salaryStatus
			}
			f.staff[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

func (f *fakeStore) UpdateStaffPassword(_ context.Context, id, hash string) error {
	for i := range f.staff {
		if f.staff[i].ID == id {
			f.staff[i].PasswordHash = hash
			f.staff[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

func (f *fakeStore) DeleteStaff(_ context.Context, id string) error {
	out := f.staff[:0]
	for _, st := range f.staff {
		if st.ID != id {
			out = append(out, st)
		}
	}
	f.staff = out
	return nil
}

func (f *fakeStore) CreateCustomer(_ context.Context, c *domain.CustomerTransaction) (string, error) {
	c.ID = f.id()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	f.customers = append(f.customers, *c)
	return c.ID, nil
}

func (f *fakeStore) ListCustomers(_ context.Context, fl domain.CustomerFilter) (*domain.CustomerPage, error) {
	out := make([]domain.CustomerTransaction, 0, len(f.customers))
	for _, c := range f.customers {
		if fl.PaymentMode != "" && c.PaymentMode != fl.PaymentMode {
			continue
		}
		if fl.StaffName != "" && c.StaffName != fl.StaffName {
			continue
		}
		if search := strings.ToLower(strings.TrimSpace(fl.Search)); search != "" {
			if !strings.Contains(c.Amount.String(), search) &&
				!strings.Contains(strings.ToLower(c.StaffName), search) &&
				!strings.Contains(strings.ToLower(c.PaymentMode), search) {
				continue
			}
		}
		if fl.DateFrom != "" || fl.DateTo != "" {
			date := domain.EffectiveDate(c.Date, c.Time, c.CreatedAt)
			if (fl.DateFrom != "" && date < fl.DateFrom) || (fl.DateTo != "" && date > fl.DateTo) {
				continue
			}
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return customerKey(out[i]) > customerKey(out[j])
	})
	if fl.Limit <= 0 {
		return &domain.CustomerPage{
			Customers:  out,
			Pagination: domain.Pagination{CurrentPage: 1, TotalPages: 1, Total: len(out), Limit: len(out)},
		}, nil
	}
	lo, hi := domain.PageBounds(len(out), fl.Page, fl.Limit)
	return &domain.CustomerPage{
		Customers:  out[lo:hi],
		Pagination: domain.NewPagination(len(out), fl.Page, fl.Limit),
	}, nil
}

func customerKey(c domain.CustomerTransaction) string {
	if c.DateTime != "" {
		return c.DateTime
	}
	return c.CreatedAt.UTC().Format(time.RFC3339)
}

func (f *fakeStore) DeleteCustomer(_ context.Context, id string) error {
	out := f.customers[:0]
	for _, c := range f.customers {
		if c.ID != id {
			out = append(out, c)
		}
	}
	f.customers = out
	return nil
}

func (f *fakeStore) CreateExpense(_ context.Context, e *domain.ExpenseRecord) (string, error) {
	e.ID = f.id()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = e.CreatedAt
	f.expenses = append(f.expenses, *e)
	return e.ID, nil
}

func (f *fakeStore) ListExpenses(_ context.Context, fl domain.ExpenseFilter) (*domain.ExpensePage, error) {
	out := make([]domain.ExpenseRecord, 0, len(f.expenses))
	for _, e := range f.expenses {
		if fl.DateFrom != "" || fl.DateTo != "" {
			date := domain.EffectiveDate(e.Date, e.Time, e.CreatedAt)
			if (fl.DateFrom != "" && date < fl.DateFrom) || (fl.DateTo != "" && date > fl.DateTo) {
				continue
			}
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateTime > out[j].DateTime })
	if fl.Limit <= 0 {
		return &domain.ExpensePage{
			Expenses:   out,
			Pagination: domain.Pagination{CurrentPage: 1, TotalPages: 1, Total: len(out), Limit: len(out)},
		}, nil
	}
	lo, hi := domain.PageBounds(len(out), fl.Page, fl.Limit)
	return &domain.ExpensePage{
		Expenses:   out[lo:hi],
		Pagination: domain.NewPagination(len(out), fl.Page, fl.Limit),
	}, nil
}

func (f *fakeStore) UpdateExpense(_ context.Context, id string, e *domain.ExpenseRecord) error {
	for i := range f.expenses {
		if f.expenses[i].ID == id {
			e.ID = id
			e.CreatedAt = f.expenses[i].CreatedAt
			e.UpdatedAt = time.Now()
			f.expenses[i] = *e
		}
	}
	return nil
}

func (f *fakeStore) DeleteExpense(_ context.Context, id string) error {
	out := f.expenses[:0]
	for _, e := range f.expenses {
		if e.ID != id {
			out = append(out, e)
		}
	}
	f.expenses = out
	return nil
}

func (f *fakeStore) CreatePerson(_ context.Context, p *domain.Person) (string, error) {
	p.ID = f.id()
	p.CreatedAt = time.Now()
	f.persons = append(f.persons, *p)
	return p.ID, nil
}

func (f *fakeStore) Ping(context.Context) error {
	return f.pingErr
}
