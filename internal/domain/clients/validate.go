package clients

import (
	"context"

	"vetsoft/internal/platform/validation"
)

const (
	msgNameRequired  = "Por favor ingrese un nombre"
	msgNameDigits    = "El nombre no puede contener números."
	msgPhoneRequired = "Por favor ingrese un teléfono"
	msgPhoneDigits   = "Por favor ingrese un numero de telefono valido, solo digitos"
	msgEmailRequired = "Por favor ingrese un email"
	msgEmailDomain   = "El email debe terminar con @vetsoft.com y contener algo antes"
)

type input struct {
	Name  string `field:"name" validate:"required,nodigits"`
	Phone string `field:"phone" validate:"required,digits"`
	Email string `field:"email" validate:"required,vetsoftemail"`
}

var messages = validation.Messages{
	"name":  {"required": msgNameRequired, "nodigits": msgNameDigits},
	"phone": {"required": msgPhoneRequired, "digits": msgPhoneDigits},
	"email": {"required": msgEmailRequired, "vetsoftemail": msgEmailDomain},
}

// Validate revisa los campos de alta de un cliente. La dirección es opcional.
func Validate(fields validation.Fields) validation.Errors {
	return validation.Check(context.Background(), input{
		Name:  fields.Get("name"),
		Phone: fields.Get("phone"),
		Email: fields.Get("email"),
	}, messages)
}
