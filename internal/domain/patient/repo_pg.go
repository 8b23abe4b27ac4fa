package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, dentist_id, name, cpf, rg, birth_date, phone, email,
	address, city, state, zip_code,
	guardian_name, guardian_cpf, guardian_rg, guardian_phone, guardian_relation,
	passport, country, nationality, notes, active, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.DentistID, &p.Name, &p.CPF, &p.RG, &p.BirthDate,
		&p.Phone, &p.Email, &p.Address, &p.City, &p.State, &p.ZipCode,
		&p.GuardianName, &p.GuardianCPF, &p.GuardianRG, &p.GuardianPhone, &p.GuardianRelation,
		&p.Passport, &p.Country, &p.Nationality, &p.Notes,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, dentistID uuid.UUID, p *Patient) error {
	p.ID = uuid.New()
	p.DentistID = dentistID
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, dentist_id, name, cpf, rg, birth_date, phone, email,
			address, city, state, zip_code,
			guardian_name, guardian_cpf, guardian_rg, guardian_phone, guardian_relation,
			passport, country, nationality, notes, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,TRUE)
		RETURNING active, created_at, updated_at`,
		p.ID, p.DentistID, p.Name, p.CPF, p.RG, p.BirthDate, p.Phone, p.Email,
		p.Address, p.City, p.State, p.ZipCode,
		p.GuardianName, p.GuardianCPF, p.GuardianRG, p.GuardianPhone, p.GuardianRelation,
		p.Passport, p.Country, p.Nationality, p.Notes).
		Scan(&p.Active, &p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE dentist_id = $1 AND id = $2`,
		dentistID, id))
}

func (r *repoPG) List(ctx context.Context, dentistID uuid.UUID, name string, limit, offset int) ([]*Patient, int, error) {
	where := `WHERE dentist_id = $1 AND active = TRUE`
	args := []interface{}{dentistID}
	idx := 2
	if name != "" {
		where += fmt.Sprintf(` AND name ILIKE '%%' || $%d || '%%'`, idx)
		args = append(args, name)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + patientCols + ` FROM patients ` + where +
		fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, dentistID uuid.UUID, p *Patient) error {
	return r.pool.QueryRow(ctx, `
		UPDATE patients SET name=$3, cpf=$4, rg=$5, birth_date=$6, phone=$7, email=$8,
			address=$9, city=$10, state=$11, zip_code=$12,
			guardian_name=$13, guardian_cpf=$14, guardian_rg=$15, guardian_phone=$16, guardian_relation=$17,
			passport=$18, country=$19, nationality=$20, notes=$21, updated_at=NOW()
		WHERE dentist_id = $1 AND id = $2
		RETURNING updated_at`,
		dentistID, p.ID, p.Name, p.CPF, p.RG, p.BirthDate, p.Phone, p.Email,
		p.Address, p.City, p.State, p.ZipCode,
		p.GuardianName, p.GuardianCPF, p.GuardianRG, p.GuardianPhone, p.GuardianRelation,
		p.Passport, p.Country, p.Nationality, p.Notes).Scan(&p.UpdatedAt)
}

func (r *repoPG) SoftDelete(ctx context.Context, dentistID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE patients SET active = FALSE, updated_at = NOW() WHERE dentist_id = $1 AND id = $2`,
		dentistID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
