package clinical

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const noteCols = `id, dentist_id, patient_id, date, procedure, tooth, description, price, created_at`

func scanNote(row pgx.Row) (*Note, error) {
	var n Note
	err := row.Scan(&n.ID, &n.DentistID, &n.PatientID, &n.Date, &n.Procedure,
		&n.Tooth, &n.Description, &n.Price, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repoPG) Create(ctx context.Context, dentistID uuid.UUID, n *Note) error {
	n.ID = uuid.New()
	n.DentistID = dentistID
	return r.pool.QueryRow(ctx, `
		INSERT INTO clinical_notes (id, dentist_id, patient_id, date, procedure, tooth, description, price)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		n.ID, n.DentistID, n.PatientID, n.Date, n.Procedure, n.Tooth, n.Description, n.Price).
		Scan(&n.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Note, error) {
	return scanNote(r.pool.QueryRow(ctx,
		`SELECT `+noteCols+` FROM clinical_notes WHERE dentist_id = $1 AND id = $2`,
		dentistID, id))
}

func (r *repoPG) List(ctx context.Context, dentistID uuid.UUID, patientID *uuid.UUID, limit, offset int) ([]*Note, int, error) {
	where := `WHERE dentist_id = $1`
	args := []interface{}{dentistID}
	idx := 2
	if patientID != nil {
		where += fmt.Sprintf(` AND patient_id = $%d`, idx)
		args = append(args, *patientID)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clinical_notes `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + noteCols + ` FROM clinical_notes ` + where +
		fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}
	return items, total, rows.Err()
}
