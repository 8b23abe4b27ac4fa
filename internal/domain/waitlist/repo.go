package waitlist

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, dentistID uuid.UUID, e *Entry) error
	GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Entry, error)
	// List orders unresolved before resolved, urgent before routine, then
	// oldest first within each band.
	List(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Entry, int, error)
	Resolve(ctx context.Context, dentistID, id uuid.UUID) (*Entry, error)
	Delete(ctx context.Context, dentistID, id uuid.UUID) error
}
