package memory

import (
	"context"

	"vetsoft/internal/domain/veterinaries"
)

type veterinaryRepo struct {
	t *table[veterinaries.Veterinary]
}

func NewVeterinaryRepo() veterinaries.Repository {
	return &veterinaryRepo{t: newTable[veterinaries.Veterinary]()}
}

func (r *veterinaryRepo) Create(ctx context.Context, v veterinaries.Veterinary) error {
	return r.t.create(v.ID, v)
}

func (r *veterinaryRepo) Update(ctx context.Context, v veterinaries.Veterinary) error {
	return r.t.update(v.ID, v)
}

func (r *veterinaryRepo) GetByID(ctx context.Context, id string) (veterinaries.Veterinary, error) {
	return r.t.get(id)
}

func (r *veterinaryRepo) List(ctx context.Context) ([]veterinaries.Veterinary, error) {
	return r.t.list(), nil
}

func (r *veterinaryRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}
