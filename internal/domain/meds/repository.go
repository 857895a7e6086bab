package meds

import "context"

type Repository interface {
	Create(ctx context.Context, m Med) error
	Update(ctx context.Context, m Med) error
	GetByID(ctx context.Context, id string) (Med, error)
	List(ctx context.Context) ([]Med, error)
	Delete(ctx context.Context, id string) error
}
