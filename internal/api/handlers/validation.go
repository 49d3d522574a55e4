package handlers

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate проверяет теги validate у модели запроса
func Validate(v interface{}) error {
	return validate.Struct(v)
}
