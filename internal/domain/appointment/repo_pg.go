package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, dentist_id, patient_id, patient_name, patient_phone,
	date, time, duration_min, procedure, price, status, fit_in, code,
	created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.DentistID, &a.PatientID, &a.PatientName, &a.PatientPhone,
		&a.Date, &a.Time, &a.DurationMin, &a.Procedure, &a.Price, &a.Status,
		&a.FitIn, &a.Code, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, dentistID uuid.UUID, a *Appointment) error {
	a.ID = uuid.New()
	a.DentistID = dentistID
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, dentist_id, patient_id, patient_name, patient_phone,
			date, time, duration_min, procedure, price, status, fit_in, code)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING created_at, updated_at`,
		a.ID, a.DentistID, a.PatientID, a.PatientName, a.PatientPhone,
		a.Date, a.Time, a.DurationMin, a.Procedure, a.Price, a.Status, a.FitIn, a.Code).
		Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE dentist_id = $1 AND id = $2`,
		dentistID, id))
}

func (r *repoPG) List(ctx context.Context, dentistID uuid.UUID, date string, limit, offset int) ([]*Appointment, int, error) {
	where := `WHERE dentist_id = $1`
	args := []interface{}{dentistID}
	idx := 2
	if date != "" {
		where += fmt.Sprintf(` AND date = $%d`, idx)
		args = append(args, date)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + apptCols + ` FROM appointments ` + where +
		fmt.Sprintf(` ORDER BY date ASC, time ASC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, dentistID uuid.UUID, a *Appointment) error {
	return r.pool.QueryRow(ctx, `
		UPDATE appointments SET patient_id=$3, patient_name=$4, patient_phone=$5,
			date=$6, time=$7, duration_min=$8, procedure=$9, price=$10, status=$11,
			fit_in=$12, updated_at=NOW()
		WHERE dentist_id = $1 AND id = $2
		RETURNING code, updated_at`,
		dentistID, a.ID, a.PatientID, a.PatientName, a.PatientPhone,
		a.Date, a.Time, a.DurationMin, a.Procedure, a.Price, a.Status, a.FitIn).
		Scan(&a.Code, &a.UpdatedAt)
}

func (r *repoPG) Delete(ctx context.Context, dentistID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM appointments WHERE dentist_id = $1 AND id = $2`, dentistID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM appointments WHERE code = $1)`, code).Scan(&exists)
	return exists, err
}

func (r *repoPG) GetByCode(ctx context.Context, code string) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE code = $1`, code))
}

func (r *repoPG) UpdateStatusByCode(ctx context.Context, code, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE appointments SET status = $2, updated_at = NOW() WHERE code = $1`, code, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
