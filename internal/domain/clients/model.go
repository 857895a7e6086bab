package clients

import "time"

// Client es el dueño de las mascotas que atiende la clínica.
type Client struct {
	ID string

	Name    string
	Phone   string // solo dígitos
	Email   string // siempre @vetsoft.com
	Address string // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
