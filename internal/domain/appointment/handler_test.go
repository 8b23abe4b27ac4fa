package appointment

import (
	"context"
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

func authedContext(e *echo.Echo, method, body string, dentistID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	auth.SetIdentity(c, auth.Identity{ID: dentistID})
	return c, rec
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, http.MethodPost,
		`{"paciente_nome":"Ana","data":"2026-09-10","hora":"14:00"}`, uuid.New())

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	ag, _ := body["agendamento"].(map[string]interface{})
	if code, _ := ag["codigo_confirmacao"].(string); len(code) != 6 {
		t.Errorf("expected 6-char confirmation code, got %v", ag["codigo_confirmacao"])
	}
}

func TestHandler_Create_MissingFields(t *testing.T) {
	h, e := newTestHandler()
	c, _ := authedContext(e, http.MethodPost, `{"paciente_nome":"Ana"}`, uuid.New())

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_FindByCode_Public(t *testing.T) {
	h, e := newTestHandler()

	a := &Appointment{PatientName: "Ana", Date: "2026-09-10", Time: "14:00"}
	h.svc.Create(context.Background(), uuid.New(), a)

	// No identity on the context: the endpoint is unauthenticated.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("codigo")
	c.SetParamValues(strings.ToLower(a.Code))

	if err := h.FindByCode(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	ag, _ := body["agendamento"].(map[string]interface{})
	if _, leaked := ag["codigo_confirmacao"]; leaked {
		// The reduced view must not echo internals beyond the public fields.
		t.Error("public view must not include the confirmation code")
	}
	if ag["paciente_nome"] != "Ana" {
		t.Errorf("expected paciente_nome Ana, got %v", ag["paciente_nome"])
	}
}

func TestHandler_FindByCode_Unknown404(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("codigo")
	c.SetParamValues("ZZZZZZ")

	err := h.FindByCode(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_Confirm(t *testing.T) {
	h, e := newTestHandler()

	a := &Appointment{PatientName: "Ana", Date: "2026-09-10", Time: "14:00"}
	h.svc.Create(context.Background(), uuid.New(), a)

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"codigo":"`+a.Code+`","acao":"confirmar"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Confirm(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	ag, _ := body["agendamento"].(map[string]interface{})
	if ag["status"] != StatusConfirmed {
		t.Errorf("expected status confirmado, got %v", ag["status"])
	}
}

func TestHandler_Confirm_BadAction(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"codigo":"ABCDEF","acao":"adiar"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Confirm(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
