package clinical

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("prontuário não encontrado")

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// PatientDirectory answers whether a patient belongs to the dentist. It keeps
// this package from importing the patient package directly.
type PatientDirectory interface {
	Exists(ctx context.Context, dentistID, patientID uuid.UUID) (bool, error)
}

type NoteInput struct {
	PatientID   uuid.UUID `json:"paciente_id"`
	Date        string    `json:"data"`
	Procedure   *string   `json:"procedimento"`
	Tooth       *string   `json:"dente"`
	Description string    `json:"descricao"`
	Price       *float64  `json:"valor"`
}

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

func (s *Service) Create(ctx context.Context, dentistID uuid.UUID, in NoteInput) (*Note, error) {
	if in.PatientID == uuid.Nil {
		return nil, &ValidationError{Msg: "paciente_id é obrigatório"}
	}
	if in.Date == "" {
		return nil, &ValidationError{Msg: "data é obrigatória"}
	}
	if in.Description == "" {
		return nil, &ValidationError{Msg: "descrição é obrigatória"}
	}

	ok, err := s.patients.Exists(ctx, dentistID, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ValidationError{Msg: "paciente não encontrado"}
	}

	n := &Note{
		PatientID:   in.PatientID,
		Date:        in.Date,
		Procedure:   in.Procedure,
		Tooth:       in.Tooth,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := s.repo.Create(ctx, dentistID, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) Get(ctx context.Context, dentistID, id uuid.UUID) (*Note, error) {
	n, err := s.repo.GetByID(ctx, dentistID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return n, err
}

func (s *Service) List(ctx context.Context, dentistID uuid.UUID, patientID *uuid.UUID, limit, offset int) ([]*Note, int, error) {
	return s.repo.List(ctx, dentistID, patientID, limit, offset)
}
