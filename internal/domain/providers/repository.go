package providers

import "context"

type Repository interface {
	Create(ctx context.Context, p Provider) error
	Update(ctx context.Context, p Provider) error
	GetByID(ctx context.Context, id string) (Provider, error)
	List(ctx context.Context) ([]Provider, error)
	Delete(ctx context.Context, id string) error
}
