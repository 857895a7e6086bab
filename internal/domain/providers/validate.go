package providers

import (
	"context"

	"vetsoft/internal/platform/validation"
)

type input struct {
	Name    string `field:"name" validate:"required"`
	Email   string `field:"email" validate:"required,contains=@"`
	Address string `field:"address" validate:"required"`
}

// Para proveedores el email vacío y el email sin "@" comparten mensaje.
var messages = validation.Messages{
	"name":    {"required": "Por favor ingrese un nombre"},
	"email":   {"*": "Por favor ingrese un email valido"},
	"address": {"required": "Por favor ingrese una direccion"},
}

func Validate(fields validation.Fields) validation.Errors {
	return validation.Check(context.Background(), input{
		Name:    fields.Get("name"),
		Email:   fields.Get("email"),
		Address: fields.Get("address"),
	}, messages)
}
