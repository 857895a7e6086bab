package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetsoft/internal/domain/pets"
)

const selectPetCols = `id, name, breed, birthday, created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, name, breed, birthday, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.Birthday,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	return execAffecting(ctx, r.db, `
		UPDATE pets
		SET
			name = $2,
			breed = $3,
			birthday = $4,
			updated_at = $5
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.Birthday,
		p.UpdatedAt,
	)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+selectPetCols+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, notFoundIfNoRows(err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectPetCols+` FROM pets ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "pets", id)
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Breed,
		&p.Birthday,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
