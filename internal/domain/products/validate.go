package products

import (
	"context"

	"vetsoft/internal/platform/validation"
)

const (
	msgNameRequired  = "Por favor ingrese un nombre"
	msgTypeRequired  = "Por favor ingrese un tipo"
	msgPriceRequired = "Por favor ingrese un precio"
	msgPriceInvalid  = "El precio debe ser un número decimal no negativo"
	msgStockRequired = "Por favor ingrese un stock"
	msgStockInteger  = "El stock debe ser un número entero"
	msgStockNegative = "El stock no puede ser negativo."
	msgStockEmpty    = "El campo de stock no puede estar vacio."
)

type input struct {
	Name  string `field:"name" validate:"required"`
	Type  string `field:"type" validate:"required"`
	Price string `field:"price" validate:"required,money"`
	Stock string `field:"stock" validate:"required,integer,nonnegint"`
}

var messages = validation.Messages{
	"name":  {"required": msgNameRequired},
	"type":  {"required": msgTypeRequired},
	"price": {"required": msgPriceRequired, "money": msgPriceInvalid},
	"stock": {"required": msgStockRequired, "integer": msgStockInteger, "nonnegint": msgStockNegative},
}

// Validate revisa los cuatro campos obligatorios del alta.
func Validate(fields validation.Fields) validation.Errors {
	return validation.Check(context.Background(), input{
		Name:  fields.Get("name"),
		Type:  fields.Get("type"),
		Price: fields.Get("price"),
		Stock: fields.Get("stock"),
	}, messages)
}

// ValidateStockUpdate es el chequeo que hace la capa HTTP antes de un update
// cuando el formulario trae stock: vacío, no entero o negativo se informa al usuario.
// El servicio igual nunca persiste un stock inválido.
func ValidateStockUpdate(fields validation.Fields) validation.Errors {
	raw, present := fields["stock"]
	if !present {
		return nil
	}
	if raw == "" {
		return validation.Errors{"stock": msgStockEmpty}
	}
	n, err := validation.ParseInt(raw)
	if err != nil {
		return validation.Errors{"stock": msgStockInteger}
	}
	if n < 0 {
		return validation.Errors{"stock": msgStockNegative}
	}
	return nil
}
