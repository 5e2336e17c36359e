// internal/domain/models.go
package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The API serializes money as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	StatusPaid    = "paid"
	StatusNotPaid = "not paid"

	PaymentModeOnline = "Online"
	PaymentModeCash   = "Cash"
)

// MonthKeyLayout is the format of salaryStatus keys, e.g. "January, 2024".
const MonthKeyLayout = "January, 2006"

// PaymentEntry is one month's salary record for a staff member. Borrow maps a
// date string to the amount taken as an advance on that day.
type PaymentEntry struct {
	SalaryAmount decimal.Decimal            `json:"salaryAmount"`
	Status       string                     `json:"status"`
	Borrow       map[string]decimal.Decimal `json:"borrow,omitempty"`
}

// UnmarshalJSON accepts both the structured form and the legacy form where an
// entry was a bare status string. Legacy entries are normalized on read.
func (e *PaymentEntry) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var status string
		if err := json.Unmarshal(data, &status); err != nil {
			return err
		}
		*e = PaymentEntry{Status: status}
		return nil
	}
	type entry PaymentEntry
	var v entry
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = PaymentEntry(v)
	return nil
}

// ValidMonthKey reports whether key matches the "January, 2024" form.
func ValidMonthKey(key string) bool {
	_, err := time.Parse(MonthKeyLayout, key)
	return err == nil
}

type Staff struct {
	ID           string                  `json:"id"`
	FullName     string                  `json:"fullName"`
	Salary       decimal.Decimal         `json:"salary"`
	JoiningDate  string                  `json:"joiningDate"`
	PasswordHash string                  `json:"-"`
	SalaryStatus map[string]PaymentEntry `json:"salaryStatus"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// CustomerTransaction is immutable once created except for deletion.
// StaffName is a denormalized copy of the staff member's name.
type CustomerTransaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	StaffName   string          `json:"staffName"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	DateTime    string          `json:"dateTime"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ExpenseItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseRecord keeps TotalAmount exactly as the caller supplied it; the
// server never recomputes it from Items.
type ExpenseRecord struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	DateTime    string          `json:"dateTime"`
	Items       []ExpenseItem   `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Credential is the singleton shared-login document.
type Credential struct {
	PasswordHash string    `json:"-"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type CustomerFilter struct {
	Search      string
	PaymentMode string
	StaffName   string
	DateFrom    string
	DateTo      string
	Page        int
	Limit       int
}

type ExpenseFilter struct {
	DateFrom string
	DateTo   string
	Page     int
	Limit    int
}

type CustomerPage struct {
	Customers  []CustomerTransaction `json:"customers"`
	Pagination Pagination            `json:"pagination"`
}

type ExpensePage struct {
	Expenses   []ExpenseRecord `json:"expenses"`
	Pagination Pagination      `json:"pagination"`
}
