package veterinaries

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

func (s *Service) Save(ctx context.Context, fields validation.Fields) (Veterinary, error) {
	if errs := Validate(fields); len(errs) > 0 {
		return Veterinary{}, errs
	}

	now := s.now()
	v := Veterinary{
		ID:        uuid.NewString(),
		Name:      fields.Get("name"),
		Phone:     fields.Get("phone"),
		Email:     fields.Get("email"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Veterinary{}, fmt.Errorf("create veterinary: %w", err)
	}
	return v, nil
}

// Update no revalida (igual que proveedores): solo ignora los campos vacíos.
func (s *Service) Update(ctx context.Context, id string, fields validation.Fields) (Veterinary, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Veterinary{}, err
	}

	next := current
	changed := false

	if v := fields.Get("name"); v != "" {
		next.Name, changed = v, true
	}
	if v := fields.Get("email"); v != "" {
		next.Email, changed = v, true
	}
	if v := fields.Get("phone"); v != "" {
		next.Phone, changed = v, true
	}

	if !changed {
		return current, nil
	}

	next.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, next); err != nil {
		return Veterinary{}, fmt.Errorf("update veterinary: %w", err)
	}
	return next, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Veterinary, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Veterinary, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
