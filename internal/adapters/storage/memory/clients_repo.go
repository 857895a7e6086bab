package memory

import (
	"context"

	"vetsoft/internal/domain/clients"
)

type clientRepo struct {
	t *table[clients.Client]
}

func NewClientRepo() clients.Repository {
	return &clientRepo{t: newTable[clients.Client]()}
}

func (r *clientRepo) Create(ctx context.Context, c clients.Client) error {
	return r.t.create(c.ID, c)
}

func (r *clientRepo) Update(ctx context.Context, c clients.Client) error {
	return r.t.update(c.ID, c)
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	return r.t.get(id)
}

func (r *clientRepo) List(ctx context.Context) ([]clients.Client, error) {
	return r.t.list(), nil
}

func (r *clientRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}
