package meds

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

func (s *Service) Save(ctx context.Context, fields validation.Fields) (Med, error) {
	if errs := Validate(fields); len(errs) > 0 {
		return Med{}, errs
	}

	dose, _ := validation.ParseFloat(fields.Get("dose"))

	now := s.now()
	m := Med{
		ID:        uuid.NewString(),
		Name:      fields.Get("name"),
		Desc:      fields.Get("desc"),
		Dose:      dose,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Med{}, fmt.Errorf("create med: %w", err)
	}
	return m, nil
}

// Update revalida el formulario completo, igual que el alta: si falta
// cualquiera de name, desc o dose no se aplica nada. Es distinto al resto de
// las entidades (update parcial) y los formularios siempre mandan los tres campos.
func (s *Service) Update(ctx context.Context, id string, fields validation.Fields) (Med, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Med{}, err
	}

	if errs := Validate(fields); len(errs) > 0 {
		return current, errs
	}

	dose, _ := validation.ParseFloat(fields.Get("dose"))

	next := current
	next.Name = fields.Get("name")
	next.Desc = fields.Get("desc")
	next.Dose = dose
	next.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, next); err != nil {
		return Med{}, fmt.Errorf("update med: %w", err)
	}
	return next, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Med, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Med, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
