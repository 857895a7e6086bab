package clients

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

// Save valida y, solo si no hay errores, inserta el cliente.
// Los errores de validación vuelven como validation.Errors.
func (s *Service) Save(ctx context.Context, fields validation.Fields) (Client, error) {
	if errs := Validate(fields); len(errs) > 0 {
		return Client{}, errs
	}

	now := s.now()
	c := Client{
		ID:        uuid.NewString(),
		Name:      fields.Get("name"),
		Phone:     fields.Get("phone"),
		Email:     fields.Get("email"),
		Address:   fields.Get("address"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}

// Update aplica un cambio parcial. Cada campo se toma solo si viene no vacío:
//   - phone se ignora si no es solo dígitos (queda el persistido)
//   - email inválido rechaza todo el update y no se persiste nada
//
// name y address no se revalidan.
func (s *Service) Update(ctx context.Context, id string, fields validation.Fields) (Client, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	next := current
	changed := false

	if v := fields.Get("name"); v != "" {
		next.Name, changed = v, true
	}
	if v := fields.Get("phone"); validation.IsDigits(v) {
		next.Phone, changed = v, true
	}
	if v := fields.Get("address"); v != "" {
		next.Address, changed = v, true
	}
	if v := fields.Get("email"); v != "" {
		if !validation.MatchesEmail(v) {
			return current, validation.Errors{"email": msgEmailDomain}
		}
		next.Email, changed = v, true
	}

	if !changed {
		return current, nil
	}

	next.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, next); err != nil {
		return Client{}, fmt.Errorf("update client: %w", err)
	}
	return next, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

// Delete borra por id sin más chequeos.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
