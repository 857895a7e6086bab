package veterinaries

import "time"

// Veterinary es un veterinario de la clínica.
type Veterinary struct {
	ID string

	Name  string
	Phone string
	Email string

	CreatedAt time.Time
	UpdatedAt time.Time
}
