package appointment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the appointment store. Dentist-facing methods are
// tenant-scoped; the code-keyed methods are unscoped because on the public
// endpoints possession of the code is the credential.
type Repository interface {
	Create(ctx context.Context, dentistID uuid.UUID, a *Appointment) error
	GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Appointment, error)
	// List returns appointments ordered by date then time, optionally
	// restricted to a single date.
	List(ctx context.Context, dentistID uuid.UUID, date string, limit, offset int) ([]*Appointment, int, error)
	Update(ctx context.Context, dentistID uuid.UUID, a *Appointment) error
	// Delete removes the row permanently.
	Delete(ctx context.Context, dentistID, id uuid.UUID) error

	// CodeExists checks code uniqueness across all tenants.
	CodeExists(ctx context.Context, code string) (bool, error)
	GetByCode(ctx context.Context, code string) (*Appointment, error)
	UpdateStatusByCode(ctx context.Context, code, status string) error
}
