package finance

import (
	"context"

	"github.com/google/uuid"
)

type EntryRepository interface {
	Create(ctx context.Context, dentistID uuid.UUID, e *Entry) error
	GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Entry, error)
	List(ctx context.Context, dentistID uuid.UUID, f EntryFilter, limit, offset int) ([]*Entry, int, error)
	Update(ctx context.Context, dentistID uuid.UUID, e *Entry) error
	Delete(ctx context.Context, dentistID, id uuid.UUID) error
}

type InvoiceRepository interface {
	// Create assigns the next per-dentist number and inserts in one statement.
	Create(ctx context.Context, dentistID uuid.UUID, inv *Invoice) error
	List(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Invoice, int, error)
}
