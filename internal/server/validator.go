package server

import (
	"github.com/go-playground/validator/v10"

	"example.com/finance-planner/internal/engine"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator создает валидатор на базе go-playground/validator
// с доменным правилом "cadence" для частот взносов и начислений.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("cadence", validCadence)
	return &CustomValidator{validator: v}
}

// Validate запускает проверку структуры по тегам.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validCadence(fl validator.FieldLevel) bool {
	return engine.KnownCadence(fl.Field().String())
}
