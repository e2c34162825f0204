package validators

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
)

func ValidateScheme(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() { // nolint: exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scheme.Scheme(field.Int()).IsKnown()
	case reflect.String:
		_, err := scheme.FromSlug(field.String())
		return err == nil
	default:
		return false
	}
}
