package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Dentist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Dentist, error)
	// GetByEmail matches case-insensitively; emails are stored lowercase.
	GetByEmail(ctx context.Context, email string) (*Dentist, error)
	Update(ctx context.Context, d *Dentist) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}
