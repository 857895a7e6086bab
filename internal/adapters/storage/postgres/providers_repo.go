package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetsoft/internal/domain/providers"
)

const selectProviderCols = `id, name, email, address, created_at, updated_at`

type ProvidersRepo struct {
	db *sql.DB
}

func NewProvidersRepo(db *sql.DB) *ProvidersRepo {
	return &ProvidersRepo{db: db}
}

func (r *ProvidersRepo) Create(ctx context.Context, p providers.Provider) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO providers (id, name, email, address, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.Name,
		p.Email,
		p.Address,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProvidersRepo) Update(ctx context.Context, p providers.Provider) error {
	return execAffecting(ctx, r.db, `
		UPDATE providers
		SET
			name = $2,
			email = $3,
			address = $4,
			updated_at = $5
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Email,
		p.Address,
		p.UpdatedAt,
	)
}

func (r *ProvidersRepo) GetByID(ctx context.Context, id string) (providers.Provider, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return providers.Provider{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+selectProviderCols+` FROM providers WHERE id = $1`, id)

	p, err := scanProvider(row)
	if err != nil {
		return providers.Provider{}, notFoundIfNoRows(err)
	}
	return p, nil
}

func (r *ProvidersRepo) List(ctx context.Context) ([]providers.Provider, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectProviderCols+` FROM providers ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]providers.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *ProvidersRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "providers", id)
}

func scanProvider(s rowScanner) (providers.Provider, error) {
	var p providers.Provider
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Address,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
