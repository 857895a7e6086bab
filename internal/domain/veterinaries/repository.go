package veterinaries

import "context"

type Repository interface {
	Create(ctx context.Context, v Veterinary) error
	Update(ctx context.Context, v Veterinary) error
	GetByID(ctx context.Context, id string) (Veterinary, error)
	List(ctx context.Context) ([]Veterinary, error)
	Delete(ctx context.Context, id string) error
}
