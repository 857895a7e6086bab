package products

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un ítem del inventario de la clínica.
type Product struct {
	ID string

	Name  string
	Type  string
	Price decimal.Decimal
	Stock int // nunca negativo

	CreatedAt time.Time
	UpdatedAt time.Time
}
