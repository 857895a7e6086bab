package pets

import "time"

// Breed define las razas (en realidad, tipos de animal) que maneja la clínica.
type Breed string

const (
	BreedPerro  Breed = "Perro"
	BreedGato   Breed = "Gato"
	BreedConejo Breed = "Conejo"
	BreedPajaro Breed = "Pájaro"
	BreedPez    Breed = "Pez"
	BreedOtro   Breed = "Otro"
)

// breeds mantiene el orden en que se muestran en los formularios.
var breeds = []Breed{BreedPerro, BreedGato, BreedConejo, BreedPajaro, BreedPez, BreedOtro}

var breedSet = func() map[Breed]struct{} {
	m := make(map[Breed]struct{}, len(breeds))
	for _, b := range breeds {
		m[b] = struct{}{}
	}
	return m
}()

// Breeds devuelve una copia de la lista de razas válidas.
func Breeds() []Breed {
	out := make([]Breed, len(breeds))
	copy(out, breeds)
	return out
}

func IsBreed(s string) bool {
	_, ok := breedSet[Breed(s)]
	return ok
}

// Pet representa una mascota atendida en la clínica.
type Pet struct {
	ID string

	Name     string
	Breed    Breed
	Birthday time.Time // solo fecha (UTC medianoche), nunca posterior a hoy

	CreatedAt time.Time
	UpdatedAt time.Time
}
