package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateKeyword accepts words made of latin letters in any case,
// optionally surrounded by whitespace.
func ValidateKeyword(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())

	// don't validate empty value
	if value == "" {
		return true
	}

	for _, r := range value {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
