package pets

import (
	"context"
	"time"

	"vetsoft/internal/platform/validation"
)

const (
	msgNameRequired     = "Por favor ingrese un nombre"
	msgBreedRequired    = "Por favor ingrese una raza"
	msgBreedInvalid     = "Por favor seleccione una raza valida"
	msgBirthdayRequired = "Por favor ingrese una fecha de nacimiento"
	msgBirthdayFormat   = "Formato de fecha invalido. Utilice el formato YYYY-MM-DD"
	msgBirthdayFuture   = "La fecha de nacimiento no puede ser posterior al día actual."

	// El formulario de edición siempre mostró su propio texto de formato.
	msgBirthdayFormatUpdate = "Formato de fecha inválido. Utilice AAAA-MM-DD."
)

type input struct {
	Name     string `field:"name" validate:"required"`
	Breed    string `field:"breed" validate:"required"`
	Birthday string `field:"birthday" validate:"required,isodate,notfuture"`
}

var messages = validation.Messages{
	"name":  {"required": msgNameRequired},
	"breed": {"required": msgBreedRequired},
	"birthday": {
		"required":  msgBirthdayRequired,
		"isodate":   msgBirthdayFormat,
		"notfuture": msgBirthdayFuture,
	},
}

// Validate revisa el alta de una mascota. today define qué fecha cuenta como futura
// (hoy es válido).
func Validate(fields validation.Fields, today time.Time) validation.Errors {
	ctx := validation.WithToday(context.Background(), today)

	errs := validation.Check(ctx, input{
		Name:     fields.Get("name"),
		Breed:    fields.Get("breed"),
		Birthday: fields.Get("birthday"),
	}, messages)

	if _, failed := errs["breed"]; !failed && !IsBreed(fields.Get("breed")) {
		errs["breed"] = msgBreedInvalid
	}
	return errs
}
