package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/cryptotools/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("scheme", validators.ValidateScheme); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("keyword", validators.ValidateKeyword); err != nil {
		return nil, err
	}
	return validate, nil
}
