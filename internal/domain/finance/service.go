package finance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrEntryNotFound   = errors.New("lançamento não encontrado")
	ErrInvoiceNotFound = errors.New("nota não encontrada")
)

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

type Service struct {
	entries  EntryRepository
	invoices InvoiceRepository
}

func NewService(entries EntryRepository, invoices InvoiceRepository) *Service {
	return &Service{entries: entries, invoices: invoices}
}

func validateEntry(e *Entry) error {
	if e.Type != TypeIncome && e.Type != TypeExpense {
		return &ValidationError{Msg: "tipo deve ser receita ou despesa"}
	}
	if e.Description == "" {
		return &ValidationError{Msg: "descrição é obrigatória"}
	}
	if e.Amount <= 0 {
		return &ValidationError{Msg: "valor deve ser maior que zero"}
	}
	if e.Date == "" {
		return &ValidationError{Msg: "data é obrigatória"}
	}
	return nil
}

func (s *Service) CreateEntry(ctx context.Context, dentistID uuid.UUID, e *Entry) error {
	if e.Status == "" {
		e.Status = "pendente"
	}
	if err := validateEntry(e); err != nil {
		return err
	}
	return s.entries.Create(ctx, dentistID, e)
}

func (s *Service) GetEntry(ctx context.Context, dentistID, id uuid.UUID) (*Entry, error) {
	e, err := s.entries.GetByID(ctx, dentistID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	return e, err
}

func (s *Service) ListEntries(ctx context.Context, dentistID uuid.UUID, f EntryFilter, limit, offset int) ([]*Entry, int, error) {
	return s.entries.List(ctx, dentistID, f, limit, offset)
}

func (s *Service) UpdateEntry(ctx context.Context, dentistID uuid.UUID, e *Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	err := s.entries.Update(ctx, dentistID, e)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEntryNotFound
	}
	return err
}

func (s *Service) DeleteEntry(ctx context.Context, dentistID, id uuid.UUID) error {
	err := s.entries.Delete(ctx, dentistID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEntryNotFound
	}
	return err
}

func (s *Service) CreateInvoice(ctx context.Context, dentistID uuid.UUID, inv *Invoice) error {
	if inv.Amount <= 0 {
		return &ValidationError{Msg: "valor deve ser maior que zero"}
	}
	if inv.IssueDate == "" {
		return &ValidationError{Msg: "data de emissão é obrigatória"}
	}
	if inv.ServiceDesc == "" {
		return &ValidationError{Msg: "descrição do serviço é obrigatória"}
	}
	if inv.Status == "" {
		inv.Status = "emitida"
	}
	return s.invoices.Create(ctx, dentistID, inv)
}

func (s *Service) ListInvoices(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]*Invoice, int, error) {
	return s.invoices.List(ctx, dentistID, limit, offset)
}
