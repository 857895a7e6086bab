package memory

import (
	"context"

	"vetsoft/internal/domain/products"
)

type productRepo struct {
	t *table[products.Product]
}

func NewProductRepo() products.Repository {
	return &productRepo{t: newTable[products.Product]()}
}

func (r *productRepo) Create(ctx context.Context, p products.Product) error {
	return r.t.create(p.ID, p)
}

func (r *productRepo) Update(ctx context.Context, p products.Product) error {
	return r.t.update(p.ID, p)
}

func (r *productRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	return r.t.get(id)
}

func (r *productRepo) List(ctx context.Context) ([]products.Product, error) {
	return r.t.list(), nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}
