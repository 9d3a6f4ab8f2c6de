package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields under their query parameter
// name, so errors read "page_size" rather than "PageSize".
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(paramName)
	return validate
}

func paramName(field reflect.StructField) string {
	for _, tag := range []string{"query", "param", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
