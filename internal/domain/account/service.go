package account

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clinica/clinica/internal/platform/auth"
)

var (
	ErrEmailTaken = errors.New("email já cadastrado")
	// ErrInvalidCredentials is returned both for an unknown email and for a
	// wrong password so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
	ErrInactiveAccount    = errors.New("conta desativada")
	ErrNotFound           = errors.New("dentista não encontrado")
)

// ValidationError marks input problems the client can fix.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

type Service struct {
	repo   Repository
	tokens *auth.TokenManager
}

func NewService(repo Repository, tokens *auth.TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a new dentist account. Emails are unique
// case-insensitively; the password is stored only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Dentist, error) {
	if in.Name == "" || in.CRO == "" || in.Email == "" || in.Password == "" {
		return nil, &ValidationError{Msg: "nome, cro, email e senha são obrigatórios"}
	}
	if len(in.Password) < 6 {
		return nil, &ValidationError{Msg: "senha deve ter no mínimo 6 caracteres"}
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	d := &Dentist{
		Name:         in.Name,
		CRO:          in.CRO,
		Email:        email,
		PasswordHash: hash,
		Plan:         "free",
	}
	if in.Clinic != "" {
		d.Clinic = &in.Clinic
	}
	if in.Specialty != "" {
		d.Specialty = &in.Specialty
	}
	if in.Phone != "" {
		d.Phone = &in.Phone
	}

	if err := s.repo.Create(ctx, d); err != nil {
		// The pre-check above races with a concurrent insert; the unique
		// index on email is the authority.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return d, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password fail identically; deactivated accounts are refused.
func (s *Service) Login(ctx context.Context, in LoginInput) (*Dentist, string, error) {
	if in.Email == "" || in.Password == "" {
		return nil, "", &ValidationError{Msg: "email e senha são obrigatórios"}
	}

	d, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(in.Password, d.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	if !d.Active {
		return nil, "", ErrInactiveAccount
	}

	token, err := s.tokens.Issue(d.ID, d.Email, d.Name)
	if err != nil {
		return nil, "", err
	}
	return d, token, nil
}

// Get loads a dentist by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Dentist, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// UpdateProfile edits the profile fields of the calling account.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileInput) (*Dentist, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		d.Name = in.Name
	}
	if in.CRO != "" {
		d.CRO = in.CRO
	}
	if in.Clinic != "" {
		d.Clinic = &in.Clinic
	}
	if in.Specialty != "" {
		d.Specialty = &in.Specialty
	}
	if in.Phone != "" {
		d.Phone = &in.Phone
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Deactivate soft-deletes the calling account. Accounts are never removed,
// so their records keep a valid owner.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// CheckPassword verifies a plain password against the stored hash of the
// given account. Used by flows that require credential re-entry.
func (s *Service) CheckPassword(ctx context.Context, id uuid.UUID, password string) (bool, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return auth.CheckPassword(password, d.PasswordHash), nil
}
