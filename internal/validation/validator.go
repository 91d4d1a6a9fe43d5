package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"cardledger/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("day_of_month", validateDayOfMonth)
	_ = v.RegisterValidation("month_of_year", validateMonthOfYear)
	_ = v.RegisterValidation("payment_preference", validatePaymentPreference)
	_ = v.RegisterValidation("sort_field", validateSortField)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMoneyAmount validates that a decimal monetary field is not negative
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !amount.IsNegative()
}

// validateDayOfMonth validates a statement cycle or payment due day (1-31)
func validateDayOfMonth(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.IsValidDayOfMonth(int(fl.Field().Int()))
	default:
		return false
	}
}

// validateMonthOfYear validates a month number (1-12)
func validateMonthOfYear(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		month := fl.Field().Int()
		return month >= 1 && month <= 12
	default:
		return false
	}
}

// validatePaymentPreference validates the payment preference enum
func validatePaymentPreference(fl validator.FieldLevel) bool {
	return models.IsValidPaymentPreference(fl.Field().String())
}

// validateSortField validates a requested account sort column
func validateSortField(fl validator.FieldLevel) bool {
	return models.IsValidSortField(fl.Field().String())
}
