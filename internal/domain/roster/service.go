package roster

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound      = errors.New("dentista não encontrado")
	ErrWrongPassword = errors.New("senha incorreta")
)

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// PasswordChecker verifies the caller's own password. Removing someone from
// the roster requires re-entering it.
type PasswordChecker interface {
	CheckPassword(ctx context.Context, dentistID uuid.UUID, password string) (bool, error)
}

type Service struct {
	repo      Repository
	passwords PasswordChecker
}

func NewService(repo Repository, passwords PasswordChecker) *Service {
	return &Service{repo: repo, passwords: passwords}
}

func (s *Service) Create(ctx context.Context, dentistID uuid.UUID, p *Professional) error {
	if p.Name == "" {
		return &ValidationError{Msg: "nome é obrigatório"}
	}
	return s.repo.Create(ctx, dentistID, p)
}

func (s *Service) Get(ctx context.Context, dentistID, id uuid.UUID) (*Professional, error) {
	p, err := s.repo.GetByID(ctx, dentistID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *Service) List(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Professional, int, error) {
	return s.repo.List(ctx, dentistID, limit, offset)
}

func (s *Service) Update(ctx context.Context, dentistID uuid.UUID, p *Professional) error {
	if p.Name == "" {
		return &ValidationError{Msg: "nome é obrigatório"}
	}
	err := s.repo.Update(ctx, dentistID, p)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete soft-deletes a roster entry after verifying the caller's password.
func (s *Service) Delete(ctx context.Context, dentistID, id uuid.UUID, password string) error {
	if password == "" {
		return &ValidationError{Msg: "senha é obrigatória"}
	}
	ok, err := s.passwords.CheckPassword(ctx, dentistID, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}
	err = s.repo.SoftDelete(ctx, dentistID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
