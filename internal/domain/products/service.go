package products

import (
	"context"
	"fmt"
	"time"

	"vetsoft/internal/platform/validation"
	"vetsoft/internal/ports/storage"

	"github.com/google/uuid"
)

var (
	ErrNotFound = storage.ErrNotFound
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Save(ctx context.Context, fields validation.Fields) (Product, error) {
	if errs := Validate(fields); len(errs) > 0 {
		return Product{}, errs
	}

	// Validate ya garantizó que ambos parsean.
	price, _ := validation.ParsePrice(fields.Get("price"))
	stock, _ := validation.ParseStock(fields.Get("stock"))

	now := s.now()
	p := Product{
		ID:        uuid.NewString(),
		Name:      fields.Get("name"),
		Type:      fields.Get("type"),
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update aplica un cambio parcial sin devolver errores de validación:
// price y stock inválidos (o stock negativo) se descartan y queda el valor persistido.
func (s *Service) Update(ctx context.Context, id string, fields validation.Fields) (Product, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	next := current
	changed := false

	if v := fields.Get("name"); v != "" {
		next.Name, changed = v, true
	}
	if v := fields.Get("type"); v != "" {
		next.Type, changed = v, true
	}
	if v := fields.Get("price"); v != "" {
		if price, err := validation.ParsePrice(v); err == nil {
			next.Price, changed = price, true
		}
	}
	if v := fields.Get("stock"); v != "" {
		if stock, ok := validation.ParseStock(v); ok {
			next.Stock, changed = stock, true
		}
	}

	if !changed {
		return current, nil
	}
	return s.persist(ctx, next)
}

// IncrementStock suma una unidad.
func (s *Service) IncrementStock(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	p.Stock++
	return s.persist(ctx, p)
}

// DecrementStock resta una unidad; en cero no hace nada.
func (s *Service) DecrementStock(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if p.Stock <= 0 {
		return p, nil
	}
	p.Stock--
	return s.persist(ctx, p)
}

func (s *Service) persist(ctx context.Context, p Product) (Product, error) {
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// OutOfStockWarnings arma un aviso por cada producto sin stock.
func OutOfStockWarnings(items []Product) []string {
	out := make([]string, 0)
	for _, p := range items {
		if p.Stock == 0 {
			out = append(out, fmt.Sprintf(`El stock del producto "%s" es 0.`, p.Name))
		}
	}
	return out
}
