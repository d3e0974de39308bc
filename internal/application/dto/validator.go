package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sn4yber/menchap-app-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate valida un request según sus tags `validate` y devuelve
// domain.ErrInvalidInput envuelto con el primer campo ofensivo.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Errorf("%w: campo %s (%s)", domain.ErrInvalidInput, errs[0].Field(), errs[0].Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}
