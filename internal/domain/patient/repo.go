package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the tenant-scoped patient store. Every method takes the
// owning dentist id; there is no way to reach another tenant's rows.
type Repository interface {
	Create(ctx context.Context, dentistID uuid.UUID, p *Patient) error
	GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Patient, error)
	// List returns active patients, optionally filtered by a name substring.
	List(ctx context.Context, dentistID uuid.UUID, name string, limit, offset int) ([]*Patient, int, error)
	Update(ctx context.Context, dentistID uuid.UUID, p *Patient) error
	// SoftDelete flips the active flag; the row stays referenceable.
	SoftDelete(ctx context.Context, dentistID, id uuid.UUID) error
}
