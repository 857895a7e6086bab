package providers

import "time"

// Provider es un proveedor de productos.
type Provider struct {
	ID string

	Name    string
	Email   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}
