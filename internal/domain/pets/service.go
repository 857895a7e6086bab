package pets

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

func (s *Service) Save(ctx context.Context, fields validation.Fields) (Pet, error) {
	now := s.now()

	if errs := Validate(fields, now); len(errs) > 0 {
		return Pet{}, errs
	}

	birthday, _ := validation.ParseDate(fields.Get("birthday"))

	p := Pet{
		ID:        uuid.NewString(),
		Name:      fields.Get("name"),
		Breed:     Breed(fields.Get("breed")),
		Birthday:  birthday,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("create pet: %w", err)
	}
	return p, nil
}

// Update aplica un cambio parcial:
//   - sin name, breed ni birthday es un no-op exitoso
//   - birthday mal formado o futuro rechaza todo el update (no se persiste nada)
//   - una raza fuera de la lista se ignora y queda la persistida
func (s *Service) Update(ctx context.Context, id string, fields validation.Fields) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if !fields.Has("name") && !fields.Has("breed") && !fields.Has("birthday") {
		return current, nil
	}

	now := s.now()
	next := current

	if v := fields.Get("name"); v != "" {
		next.Name = v
	}
	if v := fields.Get("breed"); IsBreed(v) {
		next.Breed = Breed(v)
	}
	if v := fields.Get("birthday"); v != "" {
		d, err := validation.ParseDate(v)
		if err != nil {
			return current, validation.Errors{"birthday": msgBirthdayFormatUpdate}
		}
		if validation.IsFuture(d, now) {
			return current, validation.Errors{"birthday": msgBirthdayFuture}
		}
		next.Birthday = d
	}

	if next.Name == current.Name && next.Breed == current.Breed && next.Birthday.Equal(current.Birthday) {
		return current, nil
	}

	next.UpdatedAt = now
	if err := s.repo.Update(ctx, next); err != nil {
		return Pet{}, fmt.Errorf("update pet: %w", err)
	}
	return next, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
