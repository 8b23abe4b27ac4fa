package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clinica/clinica/internal/platform/confirm"
)

var (
	ErrNotFound     = errors.New("agendamento não encontrado")
	ErrCodeNotFound = errors.New("código de confirmação não encontrado")
)

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// PatientDirectory resolves a patient into the name/phone snapshot written
// onto the appointment. Implemented by the patient service; declared here to
// keep the domains decoupled.
type PatientDirectory interface {
	Snapshot(ctx context.Context, dentistID, patientID uuid.UUID) (name string, phone *string, err error)
}

// DentistDirectory resolves the practice display fields shown on the public
// confirmation view.
type DentistDirectory interface {
	Practice(ctx context.Context, dentistID uuid.UUID) (clinic, dentist, phone string, err error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	dentists DentistDirectory
}

func NewService(repo Repository, patients PatientDirectory, dentists DentistDirectory) *Service {
	return &Service{repo: repo, patients: patients, dentists: dentists}
}

// Create validates the appointment, denormalizes the patient snapshot,
// allocates a confirmation code and inserts the row. Code and row land in a
// single statement, so an appointment never exists without its code.
func (s *Service) Create(ctx context.Context, dentistID uuid.UUID, a *Appointment) error {
	if a.Date == "" || a.Time == "" {
		return &ValidationError{Msg: "data e hora são obrigatórios"}
	}

	if a.PatientID != nil {
		name, phone, err := s.patients.Snapshot(ctx, dentistID, *a.PatientID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &ValidationError{Msg: "paciente não encontrado"}
			}
			return err
		}
		a.PatientName = name
		a.PatientPhone = phone
	}
	if a.PatientName == "" {
		return &ValidationError{Msg: "paciente_id ou paciente_nome é obrigatório"}
	}

	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if a.DurationMin <= 0 {
		a.DurationMin = 30
	}

	code, err := confirm.Allocate(ctx, s.repo.CodeExists)
	if err != nil {
		return err
	}
	a.Code = code

	return s.repo.Create(ctx, dentistID, a)
}

func (s *Service) Get(ctx context.Context, dentistID, id uuid.UUID) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, dentistID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, dentistID uuid.UUID, date string, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.List(ctx, dentistID, date, limit, offset)
}

// Update rewrites the mutable fields. A changed patient reference refreshes
// the snapshot; the confirmation code never changes.
func (s *Service) Update(ctx context.Context, dentistID uuid.UUID, a *Appointment) error {
	if a.Date == "" || a.Time == "" {
		return &ValidationError{Msg: "data e hora são obrigatórios"}
	}

	if a.PatientID != nil {
		name, phone, err := s.patients.Snapshot(ctx, dentistID, *a.PatientID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &ValidationError{Msg: "paciente não encontrado"}
			}
			return err
		}
		a.PatientName = name
		a.PatientPhone = phone
	}

	if err := s.repo.Update(ctx, dentistID, a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, dentistID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, dentistID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// FindByCode serves the public lookup. The code is matched
// case-insensitively and the returned view carries only patient-facing
// fields.
func (s *Service) FindByCode(ctx context.Context, code string) (*PublicView, error) {
	a, err := s.repo.GetByCode(ctx, confirm.Normalize(code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}

	clinic, dentist, phone, err := s.dentists.Practice(ctx, a.DentistID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	return &PublicView{
		PatientName: a.PatientName,
		Date:        a.Date,
		Time:        a.Time,
		Procedure:   a.Procedure,
		Status:      a.Status,
		Clinic:      clinic,
		Dentist:     dentist,
		Phone:       phone,
	}, nil
}

// Confirm applies a patient-side confirm/cancel action. Re-confirming an
// already-confirmed appointment succeeds without touching the row.
func (s *Service) Confirm(ctx context.Context, in ConfirmInput) (*PublicView, error) {
	if in.Action != "confirmar" && in.Action != "cancelar" {
		return nil, &ValidationError{Msg: "ação inválida: use confirmar ou cancelar"}
	}

	code := confirm.Normalize(in.Code)
	a, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}

	status := StatusConfirmed
	if in.Action == "cancelar" {
		status = StatusCancelled
	}

	// Idempotent re-confirmation: no write, no timestamp churn.
	if !(in.Action == "confirmar" && a.Status == StatusConfirmed) {
		if err := s.repo.UpdateStatusByCode(ctx, code, status); err != nil {
			return nil, err
		}
		a.Status = status
	}

	return s.FindByCode(ctx, code)
}
