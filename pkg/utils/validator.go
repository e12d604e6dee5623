package utils

import (
	"github.com/go-playground/validator/v10"

	"github.com/creation2music/checkout-backend/internal/catalog"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("music_style", validateMusicStyle)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Le style doit faire partie des styles proposés par le formulaire.
func validateMusicStyle(fl validator.FieldLevel) bool {
	return catalog.IsMusicStyle(fl.Field().String())
}
