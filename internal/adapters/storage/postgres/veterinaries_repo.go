package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetsoft/internal/domain/veterinaries"
)

const selectVeterinaryCols = `id, name, email, phone, created_at, updated_at`

type VeterinariesRepo struct {
	db *sql.DB
}

func NewVeterinariesRepo(db *sql.DB) *VeterinariesRepo {
	return &VeterinariesRepo{db: db}
}

func (r *VeterinariesRepo) Create(ctx context.Context, v veterinaries.Veterinary) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO veterinaries (id, name, email, phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		v.ID,
		v.Name,
		v.Email,
		v.Phone,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VeterinariesRepo) Update(ctx context.Context, v veterinaries.Veterinary) error {
	return execAffecting(ctx, r.db, `
		UPDATE veterinaries
		SET
			name = $2,
			email = $3,
			phone = $4,
			updated_at = $5
		WHERE id = $1
	`,
		v.ID,
		v.Name,
		v.Email,
		v.Phone,
		v.UpdatedAt,
	)
}

func (r *VeterinariesRepo) GetByID(ctx context.Context, id string) (veterinaries.Veterinary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return veterinaries.Veterinary{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+selectVeterinaryCols+` FROM veterinaries WHERE id = $1`, id)

	v, err := scanVeterinary(row)
	if err != nil {
		return veterinaries.Veterinary{}, notFoundIfNoRows(err)
	}
	return v, nil
}

func (r *VeterinariesRepo) List(ctx context.Context) ([]veterinaries.Veterinary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectVeterinaryCols+` FROM veterinaries ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]veterinaries.Veterinary, 0)
	for rows.Next() {
		v, err := scanVeterinary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

func (r *VeterinariesRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "veterinaries", id)
}

func scanVeterinary(s rowScanner) (veterinaries.Veterinary, error) {
	var v veterinaries.Veterinary
	err := s.Scan(
		&v.ID,
		&v.Name,
		&v.Email,
		&v.Phone,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}
