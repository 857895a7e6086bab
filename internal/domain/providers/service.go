package providers

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

func (s *Service) Save(ctx context.Context, fields validation.Fields) (Provider, error) {
	if errs := Validate(fields); len(errs) > 0 {
		return Provider{}, errs
	}

	now := s.now()
	p := Provider{
		ID:        uuid.NewString(),
		Name:      fields.Get("name"),
		Email:     fields.Get("email"),
		Address:   fields.Get("address"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Provider{}, fmt.Errorf("create provider: %w", err)
	}
	return p, nil
}

// Update solo reemplaza los campos que vienen no vacíos.
// A diferencia del alta no revalida: un email sin "@" se acepta tal cual.
func (s *Service) Update(ctx context.Context, id string, fields validation.Fields) (Provider, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Provider{}, err
	}

	next := current
	changed := false

	if v := fields.Get("name"); v != "" {
		next.Name, changed = v, true
	}
	if v := fields.Get("email"); v != "" {
		next.Email, changed = v, true
	}
	if v := fields.Get("address"); v != "" {
		next.Address, changed = v, true
	}

	if !changed {
		return current, nil
	}

	next.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, next); err != nil {
		return Provider{}, fmt.Errorf("update provider: %w", err)
	}
	return next, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Provider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Provider, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
