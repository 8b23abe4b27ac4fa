package account

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const dentistCols = `id, name, cro, email, password_hash, clinic, specialty, phone,
	active, plan, created_at, updated_at`

func scanDentist(row pgx.Row) (*Dentist, error) {
	var d Dentist
	err := row.Scan(&d.ID, &d.Name, &d.CRO, &d.Email, &d.PasswordHash, &d.Clinic,
		&d.Specialty, &d.Phone, &d.Active, &d.Plan, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repoPG) Create(ctx context.Context, d *Dentist) error {
	d.ID = uuid.New()
	d.Email = strings.ToLower(d.Email)
	return r.pool.QueryRow(ctx, `
		INSERT INTO dentists (id, name, cro, email, password_hash, clinic, specialty, phone, active, plan)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,TRUE,$9)
		RETURNING active, plan, created_at, updated_at`,
		d.ID, d.Name, d.CRO, d.Email, d.PasswordHash, d.Clinic, d.Specialty, d.Phone, d.Plan).
		Scan(&d.Active, &d.Plan, &d.CreatedAt, &d.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Dentist, error) {
	return scanDentist(r.pool.QueryRow(ctx,
		`SELECT `+dentistCols+` FROM dentists WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Dentist, error) {
	return scanDentist(r.pool.QueryRow(ctx,
		`SELECT `+dentistCols+` FROM dentists WHERE email = $1`, strings.ToLower(email)))
}

func (r *repoPG) Update(ctx context.Context, d *Dentist) error {
	return r.pool.QueryRow(ctx, `
		UPDATE dentists SET name=$2, cro=$3, clinic=$4, specialty=$5, phone=$6, updated_at=NOW()
		WHERE id = $1
		RETURNING updated_at`,
		d.ID, d.Name, d.CRO, d.Clinic, d.Specialty, d.Phone).Scan(&d.UpdatedAt)
}

func (r *repoPG) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE dentists SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
