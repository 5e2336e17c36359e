package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPaymentEntryUnmarshalStructured(t *testing.T) {
	var e PaymentEntry
	data := `{"salaryAmount": 15000, "status": "paid", "borrow": {"2024-01-05": 500}}`
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.SalaryAmount.String() != "15000" || e.Status != StatusPaid {
		t.Fatalf("got %+v", e)
	}
	if e.Borrow["2024-01-05"].String() != "500" {
		t.Fatalf("borrow: %v", e.Borrow)
	}
}

func TestPaymentEntryUnmarshalLegacyString(t *testing.T) {
	// Old documents stored the entry as a bare status string.
	var e PaymentEntry
	if err := json.Unmarshal([]byte(`"not paid"`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Status != StatusNotPaid {
		t.Fatalf("status: got %q", e.Status)
	}
	if !e.SalaryAmount.IsZero() || e.Borrow != nil {
		t.Fatalf("legacy entry should only carry a status: %+v", e)
	}
}

func TestPaymentEntryInsideStaffDocument(t *testing.T) {
	doc := `{"January, 2024": "paid", "February, 2024": {"salaryAmount": 100, "status": "not paid"}}`
	var status map[string]PaymentEntry
	if err := json.Unmarshal([]byte(doc), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if status["January, 2024"].Status != StatusPaid {
		t.Fatalf("legacy month: %+v", status["January, 2024"])
	}
	if status["February, 2024"].SalaryAmount.String() != "100" {
		t.Fatalf("structured month: %+v", status["February, 2024"])
	}
}

func TestValidMonthKey(t *testing.T) {
	valid := []string{"January, 2024", "December, 1999"}
	for _, key := range valid {
		if !ValidMonthKey(key) {
			t.Errorf("ValidMonthKey(%q) = false, want true", key)
		}
	}
	invalid := []string{"", "2024-01", "Jan, 2024", "January 2024", "Smarch, 2024"}
	for _, key := range invalid {
		if ValidMonthKey(key) {
			t.Errorf("ValidMonthKey(%q) = true, want false", key)
		}
	}
}

func TestAmountsMarshalAsNumbers(t *testing.T) {
	amt, _ := decimal.NewFromString("250.5")
	b, err := json.Marshal(ExpenseItem{Name: "Shampoo", Amount: amt})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"Shampoo","amount":250.5}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}

func TestAmountsUnmarshalFromStringOrNumber(t *testing.T) {
	for _, raw := range []string{`{"amount": "99.9"}`, `{"amount": 99.9}`} {
		var v struct {
			Amount decimal.Decimal `json:"amount"`
		}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if v.Amount.String() != "99.9" {
			t.Fatalf("unmarshal %s: got %s", raw, v.Amount)
		}
	}
}
