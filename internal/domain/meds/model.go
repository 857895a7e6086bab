package meds

import "time"

// Med es un medicamento del vademécum de la clínica.
type Med struct {
	ID string

	Name string
	Desc string
	Dose float64 // entre 1 y 10

	CreatedAt time.Time
	UpdatedAt time.Time
}
