package meds

import (
	"context"

	"vetsoft/internal/platform/validation"
)

const (
	msgNameRequired = "Por favor ingrese un nombre"
	msgDescRequired = "Por favor ingrese una descripcion"
	msgDoseRequired = "Por favor ingrese una dosis"
	msgDoseDecimal  = "La dosis debe ser un número decimal"
	msgDoseRange    = "La dosis debe estar entre 1 y 10"
)

type input struct {
	Name string `field:"name" validate:"required"`
	Desc string `field:"desc" validate:"required"`
	Dose string `field:"dose" validate:"required,decimal,doserange"`
}

var messages = validation.Messages{
	"name": {"required": msgNameRequired},
	"desc": {"required": msgDescRequired},
	"dose": {"required": msgDoseRequired, "decimal": msgDoseDecimal, "doserange": msgDoseRange},
}

// Validate exige los tres campos; la dosis debe parsear como decimal en [1, 10].
func Validate(fields validation.Fields) validation.Errors {
	return validation.Check(context.Background(), input{
		Name: fields.Get("name"),
		Desc: fields.Get("desc"),
		Dose: fields.Get("dose"),
	}, messages)
}
