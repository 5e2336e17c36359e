// internal/handler/handler.go
package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	val "salon-manager/internal/validator"
)

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var errs []string
		for _, e := range err.(validator.ValidationErrors) {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "dateonly":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", e.Field())
	case "clocktime":
		return fmt.Sprintf("%s must be a valid time (HH:MM)", e.Field())
	case "paymentmode":
		return fmt.Sprintf("%s must be Online or Cash", e.Field())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must not be empty", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
