package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Reportar errores con el nombre JSON del campo, no el del struct
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate ejecuta la validación por tags de go-playground/validator sobre el struct.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatErrors convierte los errores de validación en un mensaje legible
// campo por campo, apto para la respuesta HTTP.
func FormatErrors(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field(), fieldMessage(e)))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es requerido"
	case "min":
		return fmt.Sprintf("longitud mínima %s", e.Param())
	case "max":
		return fmt.Sprintf("longitud máxima %s", e.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", e.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", e.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual a %s", e.Param())
	case "ltefield":
		return fmt.Sprintf("debe ser menor o igual al campo %s", e.Param())
	default:
		return fmt.Sprintf("no cumple la regla '%s'", e.Tag())
	}
}
