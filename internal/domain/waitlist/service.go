package waitlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("registro da fila não encontrado")

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, dentistID uuid.UUID, e *Entry) error {
	if e.Name == "" {
		return &ValidationError{Msg: "nome é obrigatório"}
	}
	return s.repo.Create(ctx, dentistID, e)
}

func (s *Service) List(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	return s.repo.List(ctx, dentistID, limit, offset)
}

// Resolve marks the entry as handled. Resolving twice keeps the original
// resolution timestamp.
func (s *Service) Resolve(ctx context.Context, dentistID, id uuid.UUID) (*Entry, error) {
	e, err := s.repo.Resolve(ctx, dentistID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *Service) Delete(ctx context.Context, dentistID, id uuid.UUID) error {
	err := s.repo.Delete(ctx, dentistID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
