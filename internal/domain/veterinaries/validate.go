package veterinaries

import (
	"context"

	"vetsoft/internal/platform/validation"
)

type input struct {
	Name  string `field:"name" validate:"required"`
	Phone string `field:"phone" validate:"required"`
	Email string `field:"email" validate:"required,contains=@"`
}

var messages = validation.Messages{
	"name":  {"required": "Por favor ingrese un nombre"},
	"phone": {"required": "Por favor ingrese un teléfono"},
	"email": {
		"required": "Por favor ingrese un email",
		"contains": "Por favor ingrese un email valido",
	},
}

// Validate no exige formato de teléfono, solo que venga.
func Validate(fields validation.Fields) validation.Errors {
	return validation.Check(context.Background(), input{
		Name:  fields.Get("name"),
		Phone: fields.Get("phone"),
		Email: fields.Get("email"),
	}, messages)
}
