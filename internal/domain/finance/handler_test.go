package finance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinica/clinica/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func authedContext(e *echo.Echo, method, target, body string, dentistID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	auth.SetIdentity(c, auth.Identity{ID: dentistID, Email: "d@example.com", Name: "Dr."})
	return c, rec
}

func TestHandler_CreateEntry(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, http.MethodPost, "/",
		`{"tipo":"receita","descricao":"consulta","valor":200,"data":"2026-03-10"}`, uuid.New())

	if err := h.CreateEntry(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	lanc, _ := body["lancamento"].(map[string]interface{})
	if lanc["status"] != "pendente" {
		t.Errorf("expected default status pendente, got %v", lanc["status"])
	}
}

func TestHandler_CreateEntry_BadType(t *testing.T) {
	h, e := newTestHandler()
	c, _ := authedContext(e, http.MethodPost, "/",
		`{"tipo":"outro","descricao":"x","valor":10,"data":"2026-03-10"}`, uuid.New())

	err := h.CreateEntry(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_ListEntries_MonthFilter(t *testing.T) {
	h, e := newTestHandler()
	dentistID := uuid.New()

	for _, payload := range []string{
		`{"tipo":"receita","descricao":"a","valor":10,"data":"2026-03-10"}`,
		`{"tipo":"despesa","descricao":"b","valor":20,"data":"2026-04-02"}`,
	} {
		c, _ := authedContext(e, http.MethodPost, "/", payload, dentistID)
		if err := h.CreateEntry(c); err != nil {
			t.Fatal(err)
		}
	}

	c, rec := authedContext(e, http.MethodGet, "/?mes=2026-03", "", dentistID)
	if err := h.ListEntries(c); err != nil {
		t.Fatal(err)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	wrap, _ := body["lancamentos"].(map[string]interface{})
	if wrap["total"] != float64(1) {
		t.Errorf("expected total 1, got %v", wrap["total"])
	}
}

func TestHandler_DeleteEntry_ForeignTenant(t *testing.T) {
	h, e := newTestHandler()
	owner := uuid.New()

	c, rec := authedContext(e, http.MethodPost, "/",
		`{"tipo":"receita","descricao":"consulta","valor":200,"data":"2026-03-10"}`, owner)
	if err := h.CreateEntry(c); err != nil {
		t.Fatal(err)
	}
	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	lanc, _ := body["lancamento"].(map[string]interface{})
	id, _ := lanc["id"].(string)

	c, _ = authedContext(e, http.MethodDelete, "/", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.DeleteEntry(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign tenant, got %v", err)
	}
}

func TestHandler_CreateInvoice_NumberAssigned(t *testing.T) {
	h, e := newTestHandler()
	dentistID := uuid.New()

	c, rec := authedContext(e, http.MethodPost, "/",
		`{"valor":350,"data_emissao":"2026-03-10","descricao_servico":"tratamento de canal"}`, dentistID)
	if err := h.CreateInvoice(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	nota, _ := body["nota"].(map[string]interface{})
	if nota["numero"] != float64(1) {
		t.Errorf("expected numero 1, got %v", nota["numero"])
	}
}

func TestHandler_ListInvoices_EmptyArray(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, http.MethodGet, "/", "", uuid.New())

	if err := h.ListInvoices(c); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}
