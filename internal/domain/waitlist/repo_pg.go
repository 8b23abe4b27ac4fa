package waitlist

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const entryCols = `id, dentist_id, name, phone, reason, urgent, resolved, resolved_at, created_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.DentistID, &e.Name, &e.Phone, &e.Reason,
		&e.Urgent, &e.Resolved, &e.ResolvedAt, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) Create(ctx context.Context, dentistID uuid.UUID, e *Entry) error {
	e.ID = uuid.New()
	e.DentistID = dentistID
	return r.pool.QueryRow(ctx, `
		INSERT INTO waitlist_entries (id, dentist_id, name, phone, reason, urgent)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING resolved, created_at`,
		e.ID, e.DentistID, e.Name, e.Phone, e.Reason, e.Urgent).
		Scan(&e.Resolved, &e.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Entry, error) {
	return scanEntry(r.pool.QueryRow(ctx,
		`SELECT `+entryCols+` FROM waitlist_entries WHERE dentist_id = $1 AND id = $2`,
		dentistID, id))
}

func (r *repoPG) List(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM waitlist_entries WHERE dentist_id = $1`, dentistID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+entryCols+` FROM waitlist_entries
		WHERE dentist_id = $1
		ORDER BY resolved, urgent DESC, created_at
		LIMIT $2 OFFSET $3`,
		dentistID, limit, offset)
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

func (r *repoPG) Resolve(ctx context.Context, dentistID, id uuid.UUID) (*Entry, error) {
	return scanEntry(r.pool.QueryRow(ctx, `
		UPDATE waitlist_entries
		SET resolved = true, resolved_at = COALESCE(resolved_at, now())
		WHERE dentist_id = $1 AND id = $2
		RETURNING `+entryCols,
		dentistID, id))
}

func (r *repoPG) Delete(ctx context.Context, dentistID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM waitlist_entries WHERE dentist_id = $1 AND id = $2`,
		dentistID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
