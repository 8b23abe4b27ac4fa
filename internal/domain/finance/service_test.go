package finance

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -- Mock repositories --

type mockEntryRepo struct {
	entries map[uuid.UUID]*Entry
}

func newMockEntryRepo() *mockEntryRepo {
	return &mockEntryRepo{entries: make(map[uuid.UUID]*Entry)}
}

func (m *mockEntryRepo) Create(_ context.Context, dentistID uuid.UUID, e *Entry) error {
	e.ID = uuid.New()
	e.DentistID = dentistID
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	m.entries[e.ID] = e
	return nil
}

func (m *mockEntryRepo) GetByID(_ context.Context, dentistID, id uuid.UUID) (*Entry, error) {
	e, ok := m.entries[id]
	if !ok || e.DentistID != dentistID {
		return nil, pgx.ErrNoRows
	}
	return e, nil
}

func (m *mockEntryRepo) List(_ context.Context, dentistID uuid.UUID, f EntryFilter, limit, offset int) ([]*Entry, int, error) {
	var items []*Entry
	for _, e := range m.entries {
		if e.DentistID != dentistID {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.Month != "" && !strings.HasPrefix(e.Date, f.Month) {
			continue
		}
		items = append(items, e)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date > items[j].Date })
	return items, len(items), nil
}

func (m *mockEntryRepo) Update(_ context.Context, dentistID uuid.UUID, e *Entry) error {
	existing, ok := m.entries[e.ID]
	if !ok || existing.DentistID != dentistID {
		return pgx.ErrNoRows
	}
	e.DentistID = dentistID
	e.UpdatedAt = time.Now()
	m.entries[e.ID] = e
	return nil
}

func (m *mockEntryRepo) Delete(_ context.Context, dentistID, id uuid.UUID) error {
	e, ok := m.entries[id]
	if !ok || e.DentistID != dentistID {
		return pgx.ErrNoRows
	}
	delete(m.entries, id)
	return nil
}

type mockInvoiceRepo struct {
	invoices []*Invoice
}

func (m *mockInvoiceRepo) Create(_ context.Context, dentistID uuid.UUID, inv *Invoice) error {
	inv.ID = uuid.New()
	inv.DentistID = dentistID
	inv.CreatedAt = time.Now()
	max := 0
	for _, i := range m.invoices {
		if i.DentistID == dentistID && i.Number > max {
			max = i.Number
		}
	}
	inv.Number = max + 1
	m.invoices = append(m.invoices, inv)
	return nil
}

func (m *mockInvoiceRepo) List(_ context.Context, dentistID uuid.UUID, limit, offset int) ([]*Invoice, int, error) {
	var items []*Invoice
	for _, i := range m.invoices {
		if i.DentistID == dentistID {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Number > items[j].Number })
	return items, len(items), nil
}

func newTestService() (*Service, *mockEntryRepo, *mockInvoiceRepo) {
	entries := newMockEntryRepo()
	invoices := &mockInvoiceRepo{}
	return NewService(entries, invoices), entries, invoices
}

func validIncome() *Entry {
	return &Entry{Type: TypeIncome, Description: "consulta", Amount: 200, Date: "2026-03-10"}
}

func TestCreateEntry_DefaultsStatus(t *testing.T) {
	svc, _, _ := newTestService()

	e := validIncome()
	if err := svc.CreateEntry(context.Background(), uuid.New(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != "pendente" {
		t.Errorf("expected status pendente, got %q", e.Status)
	}
}

func TestCreateEntry_RejectsBadType(t *testing.T) {
	svc, _, _ := newTestService()

	e := validIncome()
	e.Type = "transferencia"
	err := svc.CreateEntry(context.Background(), uuid.New(), e)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateEntry_RejectsNonPositiveAmount(t *testing.T) {
	svc, _, _ := newTestService()

	for _, amount := range []float64{0, -10} {
		e := validIncome()
		e.Amount = amount
		err := svc.CreateEntry(context.Background(), uuid.New(), e)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("amount %v: expected ValidationError, got %v", amount, err)
		}
	}
}

func TestListEntries_Filters(t *testing.T) {
	svc, _, _ := newTestService()
	dentistID := uuid.New()

	seed := []*Entry{
		{Type: TypeIncome, Description: "consulta", Amount: 200, Date: "2026-03-10", Status: "pago"},
		{Type: TypeIncome, Description: "limpeza", Amount: 150, Date: "2026-03-22", Status: "pendente"},
		{Type: TypeExpense, Description: "material", Amount: 80, Date: "2026-04-01", Status: "pago"},
	}
	for _, e := range seed {
		if err := svc.CreateEntry(context.Background(), dentistID, e); err != nil {
			t.Fatal(err)
		}
	}

	_, total, _ := svc.ListEntries(context.Background(), dentistID, EntryFilter{Type: TypeIncome}, 50, 0)
	if total != 2 {
		t.Errorf("tipo filter: expected 2, got %d", total)
	}
	_, total, _ = svc.ListEntries(context.Background(), dentistID, EntryFilter{Status: "pago"}, 50, 0)
	if total != 2 {
		t.Errorf("status filter: expected 2, got %d", total)
	}
	_, total, _ = svc.ListEntries(context.Background(), dentistID, EntryFilter{Month: "2026-03"}, 50, 0)
	if total != 2 {
		t.Errorf("month filter: expected 2, got %d", total)
	}
	_, total, _ = svc.ListEntries(context.Background(), dentistID, EntryFilter{Type: TypeExpense, Month: "2026-03"}, 50, 0)
	if total != 0 {
		t.Errorf("combined filter: expected 0, got %d", total)
	}
}

func TestDeleteEntry_IsHardDelete(t *testing.T) {
	svc, repo, _ := newTestService()
	dentistID := uuid.New()

	e := validIncome()
	if err := svc.CreateEntry(context.Background(), dentistID, e); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteEntry(context.Background(), dentistID, e.ID); err != nil {
		t.Fatal(err)
	}
	if len(repo.entries) != 0 {
		t.Error("expected entry row to be gone")
	}
	if _, err := svc.GetEntry(context.Background(), dentistID, e.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestUpdateEntry_ForeignTenantIsNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	dentistID := uuid.New()

	e := validIncome()
	if err := svc.CreateEntry(context.Background(), dentistID, e); err != nil {
		t.Fatal(err)
	}

	stolen := *e
	stolen.Description = "alterado"
	if err := svc.UpdateEntry(context.Background(), uuid.New(), &stolen); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestCreateInvoice_SequentialPerTenant(t *testing.T) {
	svc, _, _ := newTestService()
	first := uuid.New()
	second := uuid.New()

	for i := 0; i < 3; i++ {
		inv := &Invoice{Amount: 100, IssueDate: "2026-03-10", ServiceDesc: "tratamento"}
		if err := svc.CreateInvoice(context.Background(), first, inv); err != nil {
			t.Fatal(err)
		}
		if inv.Number != i+1 {
			t.Errorf("expected number %d, got %d", i+1, inv.Number)
		}
	}

	// A second dentist starts its own sequence at 1.
	inv := &Invoice{Amount: 50, IssueDate: "2026-03-11", ServiceDesc: "avaliação"}
	if err := svc.CreateInvoice(context.Background(), second, inv); err != nil {
		t.Fatal(err)
	}
	if inv.Number != 1 {
		t.Errorf("expected independent sequence starting at 1, got %d", inv.Number)
	}
}

func TestCreateInvoice_DefaultsStatus(t *testing.T) {
	svc, _, _ := newTestService()

	inv := &Invoice{Amount: 100, IssueDate: "2026-03-10", ServiceDesc: "tratamento"}
	if err := svc.CreateInvoice(context.Background(), uuid.New(), inv); err != nil {
		t.Fatal(err)
	}
	if inv.Status != "emitida" {
		t.Errorf("expected status emitida, got %q", inv.Status)
	}
}

func TestCreateInvoice_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []Invoice{
		{IssueDate: "2026-03-10", ServiceDesc: "x"},
		{Amount: 100, ServiceDesc: "x"},
		{Amount: 100, IssueDate: "2026-03-10"},
	}
	for i := range cases {
		err := svc.CreateInvoice(context.Background(), uuid.New(), &cases[i])
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}
