package validator

import (
	"github.com/go-playground/validator/v10"

	"hobbyhub/internal/domain"
)

// IsCategory validates that a bound field names one of the closed set of
// hobby categories. Registered with gin's binding engine as "category".
func IsCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // optional fields pass; required is a separate tag
	}
	return domain.ValidCategory(value)
}
