package roster

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const profCols = `id, dentist_id, name, cro, specialty, icon, photo, color,
	active, created_at, updated_at`

func scanProfessional(row pgx.Row) (*Professional, error) {
	var p Professional
	err := row.Scan(&p.ID, &p.DentistID, &p.Name, &p.CRO, &p.Specialty,
		&p.Icon, &p.Photo, &p.Color, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, dentistID uuid.UUID, p *Professional) error {
	p.ID = uuid.New()
	p.DentistID = dentistID
	p.Active = true
	return r.pool.QueryRow(ctx, `
		INSERT INTO professionals (id, dentist_id, name, cro, specialty, icon, photo, color)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		p.ID, p.DentistID, p.Name, p.CRO, p.Specialty, p.Icon, p.Photo, p.Color).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Professional, error) {
	return scanProfessional(r.pool.QueryRow(ctx,
		`SELECT `+profCols+` FROM professionals WHERE dentist_id = $1 AND id = $2`,
		dentistID, id))
}

func (r *repoPG) List(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Professional, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM professionals WHERE dentist_id = $1 AND active`, dentistID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+profCols+` FROM professionals
		WHERE dentist_id = $1 AND active
		ORDER BY name LIMIT $2 OFFSET $3`,
		dentistID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Professional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, dentistID uuid.UUID, p *Professional) error {
	updated, err := scanProfessional(r.pool.QueryRow(ctx, `
		UPDATE professionals
		SET name=$3, cro=$4, specialty=$5, icon=$6, photo=$7, color=$8, updated_at=now()
		WHERE dentist_id = $1 AND id = $2 AND active
		RETURNING `+profCols,
		dentistID, p.ID, p.Name, p.CRO, p.Specialty, p.Icon, p.Photo, p.Color))
	if err != nil {
		return err
	}
	*p = *updated
	return nil
}

func (r *repoPG) SoftDelete(ctx context.Context, dentistID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE professionals SET active = false, updated_at = now()
		WHERE dentist_id = $1 AND id = $2 AND active`,
		dentistID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
