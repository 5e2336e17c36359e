// internal/validator/validator.go
package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"salon-manager/internal/domain"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// "2024-01-15"
	_ = Validate.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateLayout, fl.Field().String())
		return err == nil
	})

	// "14:30" or "14:30:05"
	_ = Validate.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if _, err := time.Parse("15:04", s); err == nil {
			return true
		}
		_, err := time.Parse("15:04:05", s)
		return err == nil
	})

	_ = Validate.RegisterValidation("paymentmode", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == domain.PaymentModeOnline || s == domain.PaymentModeCash
	})

	// not empty and not only whitespace
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(regexp.MustCompile(`\S`).FindString(s)) > 0
	})
}
