package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound covers both a genuinely missing patient and one owned by
// another tenant; the two cases must be indistinguishable to the caller.
var ErrNotFound = errors.New("paciente não encontrado")

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, dentistID uuid.UUID, p *Patient) error {
	if p.Name == "" {
		return &ValidationError{Msg: "nome é obrigatório"}
	}
	return s.repo.Create(ctx, dentistID, p)
}

func (s *Service) Get(ctx context.Context, dentistID, id uuid.UUID) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, dentistID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, dentistID uuid.UUID, name string, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, dentistID, name, limit, offset)
}

func (s *Service) Update(ctx context.Context, dentistID uuid.UUID, p *Patient) error {
	if p.Name == "" {
		return &ValidationError{Msg: "nome é obrigatório"}
	}
	if err := s.repo.Update(ctx, dentistID, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, dentistID, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, dentistID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
