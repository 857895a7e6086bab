package validation

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// Messages traduce (campo, tag) a un mensaje para el usuario.
// La clave "*" dentro de un campo actúa como mensaje por defecto.
type Messages map[string]map[string]string

type todayKey struct{}

// WithToday fija el "hoy" que usa la regla notfuture.
func WithToday(ctx context.Context, today time.Time) context.Context {
	return context.WithValue(ctx, todayKey{}, today)
}

func todayFrom(ctx context.Context) time.Time {
	if t, ok := ctx.Value(todayKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// validate es seguro para uso concurrente una vez registradas las reglas.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores se reportan con el nombre del campo del formulario.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return fld.Name
	})

	mustRegister(v, "nodigits", func(fl validator.FieldLevel) bool {
		return !HasDigit(fl.Field().String())
	})
	mustRegister(v, "digits", func(fl validator.FieldLevel) bool {
		return IsDigits(fl.Field().String())
	})
	mustRegister(v, "vetsoftemail", func(fl validator.FieldLevel) bool {
		return MatchesEmail(fl.Field().String())
	})
	mustRegister(v, "decimal", func(fl validator.FieldLevel) bool {
		_, err := ParseFloat(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "doserange", func(fl validator.FieldLevel) bool {
		d, err := ParseFloat(fl.Field().String())
		return err == nil && DoseInRange(d)
	})
	mustRegister(v, "integer", func(fl validator.FieldLevel) bool {
		_, err := ParseInt(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "nonnegint", func(fl validator.FieldLevel) bool {
		_, ok := ParseStock(fl.Field().String())
		return ok
	})
	mustRegister(v, "money", func(fl validator.FieldLevel) bool {
		_, err := ParsePrice(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	if err := v.RegisterValidationCtx("notfuture", func(ctx context.Context, fl validator.FieldLevel) bool {
		d, err := ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !IsFuture(d, todayFrom(ctx))
	}); err != nil {
		panic(err)
	}

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Check valida un struct de input con tags `validate` y `field`, y traduce
// el primer fallo de cada campo con msgs. Los tags se evalúan en orden, así que
// "required" siempre gana sobre los chequeos de formato y rango.
func Check(ctx context.Context, in any, msgs Messages) Errors {
	errs := Errors{}

	err := validate.StructCtx(ctx, in)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Solo pasa con inputs que no son struct: error de programación.
		panic(err)
	}

	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, done := errs[field]; done {
			continue
		}
		errs[field] = message(msgs, field, fe)
	}
	return errs
}

func message(msgs Messages, field string, fe validator.FieldError) string {
	if byTag, ok := msgs[field]; ok {
		if m, ok := byTag[fe.Tag()]; ok {
			return m
		}
		if m, ok := byTag["*"]; ok {
			return m
		}
	}
	return fe.Error()
}
