package memory

import (
	"context"

	"vetsoft/internal/domain/providers"
)

type providerRepo struct {
	t *table[providers.Provider]
}

func NewProviderRepo() providers.Repository {
	return &providerRepo{t: newTable[providers.Provider]()}
}

func (r *providerRepo) Create(ctx context.Context, p providers.Provider) error {
	return r.t.create(p.ID, p)
}

func (r *providerRepo) Update(ctx context.Context, p providers.Provider) error {
	return r.t.update(p.ID, p)
}

func (r *providerRepo) GetByID(ctx context.Context, id string) (providers.Provider, error) {
	return r.t.get(id)
}

func (r *providerRepo) List(ctx context.Context) ([]providers.Provider, error) {
	return r.t.list(), nil
}

func (r *providerRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}
