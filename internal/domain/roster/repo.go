package roster

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, dentistID uuid.UUID, p *Professional) error
	GetByID(ctx context.Context, dentistID, id uuid.UUID) (*Professional, error)
	List(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Professional, int, error)
	Update(ctx context.Context, dentistID uuid.UUID, p *Professional) error
	SoftDelete(ctx context.Context, dentistID, id uuid.UUID) error
}
