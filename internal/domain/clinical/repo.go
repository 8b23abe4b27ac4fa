package clinical

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, dentistID uuid.UUID, n *Note) error
	GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Note, error)
	// List returns notes newest-first, optionally restricted to one patient.
	List(ctx context.Context, dentistID uuid.UUID, patientID *uuid.UUID, limit, offset int) ([]*Note, int, error)
}
