package memory

import (
	"context"

	"vetsoft/internal/domain/meds"
)

type medRepo struct {
	t *table[meds.Med]
}

func NewMedRepo() meds.Repository {
	return &medRepo{t: newTable[meds.Med]()}
}

func (r *medRepo) Create(ctx context.Context, m meds.Med) error {
	return r.t.create(m.ID, m)
}

func (r *medRepo) Update(ctx context.Context, m meds.Med) error {
	return r.t.update(m.ID, m)
}

func (r *medRepo) GetByID(ctx context.Context, id string) (meds.Med, error) {
	return r.t.get(id)
}

func (r *medRepo) List(ctx context.Context) ([]meds.Med, error) {
	return r.t.list(), nil
}

func (r *medRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}
