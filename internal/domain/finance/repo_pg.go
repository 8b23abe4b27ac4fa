package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type entryRepoPG struct{ pool *pgxpool.Pool }

func NewEntryRepoPG(pool *pgxpool.Pool) EntryRepository { return &entryRepoPG{pool: pool} }

const entryCols = `id, dentist_id, type, description, amount, date, status,
	method, installments, patient_id, created_at, updated_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.DentistID, &e.Type, &e.Description, &e.Amount,
		&e.Date, &e.Status, &e.Method, &e.Installment, &e.PatientID,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepoPG) Create(ctx context.Context, dentistID uuid.UUID, e *Entry) error {
	e.ID = uuid.New()
	e.DentistID = dentistID
	return r.pool.QueryRow(ctx, `
		INSERT INTO financial_entries (id, dentist_id, type, description, amount,
			date, status, method, installments, patient_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at, updated_at`,
		e.ID, e.DentistID, e.Type, e.Description, e.Amount,
		e.Date, e.Status, e.Method, e.Installment, e.PatientID).
		Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *entryRepoPG) GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Entry, error) {
	return scanEntry(r.pool.QueryRow(ctx,
		`SELECT `+entryCols+` FROM financial_entries WHERE dentist_id = $1 AND id = $2`,
		dentistID, id))
}

func (r *entryRepoPG) List(ctx context.Context, dentistID uuid.UUID, f EntryFilter, limit, offset int) ([]*Entry, int, error) {
	where := `WHERE dentist_id = $1`
	args := []interface{}{dentistID}
	idx := 2
	if f.Type != "" {
		where += fmt.Sprintf(` AND type = $%d`, idx)
		args = append(args, f.Type)
		idx++
	}
	if f.Status != "" {
		where += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, f.Status)
		idx++
	}
	if f.Month != "" {
		where += fmt.Sprintf(` AND date LIKE $%d`, idx)
		args = append(args, f.Month+"%")
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM financial_entries `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + entryCols + ` FROM financial_entries ` + where +
		fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, rows.Err()
}

func (r *entryRepoPG) Update(ctx context.Context, dentistID uuid.UUID, e *Entry) error {
	updated, err := scanEntry(r.pool.QueryRow(ctx, `
		UPDATE financial_entries
		SET type=$3, description=$4, amount=$5, date=$6, status=$7,
			method=$8, installments=$9, patient_id=$10, updated_at=now()
		WHERE dentist_id = $1 AND id = $2
		RETURNING `+entryCols,
		dentistID, e.ID, e.Type, e.Description, e.Amount, e.Date, e.Status,
		e.Method, e.Installment, e.PatientID))
	if err != nil {
		return err
	}
	*e = *updated
	return nil
}

func (r *entryRepoPG) Delete(ctx context.Context, dentistID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM financial_entries WHERE dentist_id = $1 AND id = $2`,
		dentistID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type invoiceRepoPG struct{ pool *pgxpool.Pool }

func NewInvoiceRepoPG(pool *pgxpool.Pool) InvoiceRepository { return &invoiceRepoPG{pool: pool} }

func (r *invoiceRepoPG) Create(ctx context.Context, dentistID uuid.UUID, inv *Invoice) error {
	inv.ID = uuid.New()
	inv.DentistID = dentistID
	// The subselect and the insert run in one statement so two concurrent
	// inserts for the same dentist cannot read the same max.
	return r.pool.QueryRow(ctx, `
		INSERT INTO invoices (id, dentist_id, number, amount, issue_date, service_desc, status)
		SELECT $1, $2, COALESCE(MAX(number), 0) + 1, $3, $4, $5, $6
		FROM invoices WHERE dentist_id = $2
		RETURNING number, created_at`,
		inv.ID, inv.DentistID, inv.Amount, inv.IssueDate, inv.ServiceDesc, inv.Status).
		Scan(&inv.Number, &inv.CreatedAt)
}

func (r *invoiceRepoPG) List(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Invoice, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE dentist_id = $1`, dentistID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, dentist_id, number, amount, issue_date, service_desc, status, created_at
		FROM invoices WHERE dentist_id = $1
		ORDER BY number DESC LIMIT $2 OFFSET $3`,
		dentistID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.DentistID, &inv.Number, &inv.Amount,
			&inv.IssueDate, &inv.ServiceDesc, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &inv)
	}
	return items, total, rows.Err()
}
