package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetsoft/internal/domain/clients"
)

const selectClientCols = `id, name, phone, email, address, created_at, updated_at`

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, phone, email, address, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	return execAffecting(ctx, r.db, `
		UPDATE clients
		SET
			name = $2,
			phone = $3,
			email = $4,
			address = $5,
			updated_at = $6
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.UpdatedAt,
	)
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clients.Client{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+selectClientCols+` FROM clients WHERE id = $1`, id)

	c, err := scanClient(row)
	if err != nil {
		return clients.Client{}, notFoundIfNoRows(err)
	}
	return c, nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectClientCols+` FROM clients ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "clients", id)
}

func scanClient(s rowScanner) (clients.Client, error) {
	var c clients.Client
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
