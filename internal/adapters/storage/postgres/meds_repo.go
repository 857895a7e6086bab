package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vetsoft/internal/domain/meds"
)

const selectMedCols = `id, name, "desc", dose, created_at, updated_at`

type MedsRepo struct {
	db *sql.DB
}

func NewMedsRepo(db *sql.DB) *MedsRepo {
	return &MedsRepo{db: db}
}

func (r *MedsRepo) Create(ctx context.Context, m meds.Med) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO meds (id, name, "desc", dose, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		m.ID,
		m.Name,
		m.Desc,
		m.Dose,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedsRepo) Update(ctx context.Context, m meds.Med) error {
	return execAffecting(ctx, r.db, `
		UPDATE meds
		SET
			name = $2,
			"desc" = $3,
			dose = $4,
			updated_at = $5
		WHERE id = $1
	`,
		m.ID,
		m.Name,
		m.Desc,
		m.Dose,
		m.UpdatedAt,
	)
}

func (r *MedsRepo) GetByID(ctx context.Context, id string) (meds.Med, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return meds.Med{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+selectMedCols+` FROM meds WHERE id = $1`, id)

	m, err := scanMed(row)
	if err != nil {
		return meds.Med{}, notFoundIfNoRows(err)
	}
	return m, nil
}

func (r *MedsRepo) List(ctx context.Context) ([]meds.Med, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectMedCols+` FROM meds ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]meds.Med, 0)
	for rows.Next() {
		m, err := scanMed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *MedsRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "meds", id)
}

func scanMed(s rowScanner) (meds.Med, error) {
	var m meds.Med
	err := s.Scan(
		&m.ID,
		&m.Name,
		&m.Desc,
		&m.Dose,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
