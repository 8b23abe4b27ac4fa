package account

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clinica/clinica/internal/platform/auth"
)

// -- Mock Repository --

type mockRepo struct {
	dentists  map[uuid.UUID]*Dentist
	createErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{dentists: make(map[uuid.UUID]*Dentist)}
}

func (m *mockRepo) Create(_ context.Context, d *Dentist) error {
	if m.createErr != nil {
		return m.createErr
	}
	d.ID = uuid.New()
	d.Email = strings.ToLower(d.Email)
	d.Active = true
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	m.dentists[d.ID] = d
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Dentist, error) {
	d, ok := m.dentists[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return d, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*Dentist, error) {
	for _, d := range m.dentists {
		if d.Email == strings.ToLower(email) {
			return d, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockRepo) Update(_ context.Context, d *Dentist) error {
	if _, ok := m.dentists[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	d.UpdatedAt = time.Now()
	m.dentists[d.ID] = d
	return nil
}

func (m *mockRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	d, ok := m.dentists[id]
	if !ok {
		return pgx.ErrNoRows
	}
	d.Active = false
	return nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := newMockRepo()
	return NewService(repo, tm), repo
}

func validInput() RegisterInput {
	return RegisterInput{Name: "Dra. Ana", CRO: "SP-12345", Email: "ana@example.com", Password: "senha123"}
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)

	d, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if !d.Active {
		t.Error("expected new account to be active")
	}
	if d.Plan != "free" {
		t.Errorf("expected plan free, got %s", d.Plan)
	}
	if d.PasswordHash == "senha123" {
		t.Error("password must not be stored in plain text")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	in := validInput()
	in.CRO = ""
	_, err := svc.Register(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _ := newTestService(t)

	in := validInput()
	in.Password = "12345"
	_, err := svc.Register(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := validInput()
	in.Email = "ANA@Example.COM"
	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_DuplicateEmailRaceOnInsert(t *testing.T) {
	svc, repo := newTestService(t)

	// Pre-check sees no duplicate, but a concurrent registration wins the
	// insert and the unique index fires.
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "dentists_email_key"}

	_, err := svc.Register(context.Background(), validInput())
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Register(context.Background(), validInput())

	d, token, err := svc.Login(context.Background(), LoginInput{Email: "Ana@Example.com", Password: "senha123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if d.Email != "ana@example.com" {
		t.Errorf("unexpected email %s", d.Email)
	}
}

func TestLogin_WrongPasswordMatchesUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Register(context.Background(), validInput())

	_, _, errWrongPass := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "errada1"})
	_, _, errNoUser := svc.Login(context.Background(), LoginInput{Email: "ninguem@example.com", Password: "senha123"})

	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Error("wrong-password and unknown-email must produce the same message")
	}
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, repo := newTestService(t)
	d, _ := svc.Register(context.Background(), validInput())
	repo.dentists[d.ID].Active = false

	_, _, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "senha123"})
	if !errors.Is(err, ErrInactiveAccount) {
		t.Errorf("expected ErrInactiveAccount, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	d, _ := svc.Register(context.Background(), validInput())

	updated, err := svc.UpdateProfile(context.Background(), d.ID, ProfileInput{Clinic: "Clínica Sorriso"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Clinic == nil || *updated.Clinic != "Clínica Sorriso" {
		t.Error("expected clinic to be updated")
	}
	if updated.Name != "Dra. Ana" {
		t.Error("untouched fields must be preserved")
	}
}

func TestDeactivate(t *testing.T) {
	svc, repo := newTestService(t)
	d, _ := svc.Register(context.Background(), validInput())

	if err := svc.Deactivate(context.Background(), d.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.dentists[d.ID].Active {
		t.Error("expected account to be inactive")
	}

	if err := svc.Deactivate(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckPassword(t *testing.T) {
	svc, _ := newTestService(t)
	d, _ := svc.Register(context.Background(), validInput())

	ok, err := svc.CheckPassword(context.Background(), d.ID, "senha123")
	if err != nil || !ok {
		t.Errorf("expected password to match, ok=%v err=%v", ok, err)
	}
	ok, _ = svc.CheckPassword(context.Background(), d.ID, "outra")
	if ok {
		t.Error("expected wrong password to fail")
	}
}
