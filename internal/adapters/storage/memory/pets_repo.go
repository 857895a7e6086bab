package memory

import (
	"context"

	"vetsoft/internal/domain/pets"
)

type petRepo struct {
	t *table[pets.Pet]
}

func NewPetRepo() pets.Repository {
	return &petRepo{t: newTable[pets.Pet]()}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	return r.t.create(p.ID, p)
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	return r.t.update(p.ID, p)
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	return r.t.get(id)
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.t.list(), nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}
