package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetsoft/internal/domain/products"
)

const selectProductCols = `id, name, type, price, stock, created_at, updated_at`

type ProductsRepo struct {
	db *sql.DB
}

func NewProductsRepo(db *sql.DB) *ProductsRepo {
	return &ProductsRepo{db: db}
}

func (r *ProductsRepo) Create(ctx context.Context, p products.Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, type, price, stock, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		p.ID,
		p.Name,
		p.Type,
		p.Price,
		p.Stock,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProductsRepo) Update(ctx context.Context, p products.Product) error {
	return execAffecting(ctx, r.db, `
		UPDATE products
		SET
			name = $2,
			type = $3,
			price = $4,
			stock = $5,
			updated_at = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Type,
		p.Price,
		p.Stock,
		p.UpdatedAt,
	)
}

func (r *ProductsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return products.Product{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+selectProductCols+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		return products.Product{}, notFoundIfNoRows(err)
	}
	return p, nil
}

func (r *ProductsRepo) List(ctx context.Context) ([]products.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectProductCols+` FROM products ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]products.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *ProductsRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "products", id)
}

func scanProduct(s rowScanner) (products.Product, error) {
	var p products.Product
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Price,
		&p.Stock,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
