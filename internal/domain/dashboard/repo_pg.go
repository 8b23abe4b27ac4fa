package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) CountActivePatients(ctx context.Context, dentistID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patients WHERE dentist_id = $1 AND active`,
		dentistID).Scan(&n)
	return n, err
}

func (r *repoPG) CountAppointmentsOn(ctx context.Context, dentistID uuid.UUID, date string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE dentist_id = $1 AND date = $2`,
		dentistID, date).Scan(&n)
	return n, err
}

func (r *repoPG) CountAppointmentsInMonth(ctx context.Context, dentistID uuid.UUID, month, until string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE dentist_id = $1 AND date LIKE $2 AND date <= $3`,
		dentistID, month+"%", until).Scan(&n)
	return n, err
}

func (r *repoPG) SumRevenueInMonth(ctx context.Context, dentistID uuid.UUID, month, until string) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM financial_entries
		WHERE dentist_id = $1 AND type = 'receita' AND date LIKE $2 AND date <= $3`,
		dentistID, month+"%", until).Scan(&sum)
	return sum, err
}

func (r *repoPG) NextAppointments(ctx context.Context, dentistID uuid.UUID, from string, limit int) ([]*Upcoming, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_name, date, time, procedure, status
		FROM appointments
		WHERE dentist_id = $1 AND date >= $2 AND status <> 'cancelado'
		ORDER BY date, time
		LIMIT $3`,
		dentistID, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Upcoming
	for rows.Next() {
		var u Upcoming
		if err := rows.Scan(&u.ID, &u.PatientName, &u.Date, &u.Time, &u.Procedure, &u.Status); err != nil {
			return nil, err
		}
		items = append(items, &u)
	}
	return items, rows.Err()
}
