package roster

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

func createProfessional(t *testing.T, h *Handler, e *echo.Echo, dentistID uuid.UUID) string {
	t.Helper()
	c, rec := authedContext(e, http.MethodPost, "/",
		`{"nome":"Dra. Beatriz","cor":"#4f46e5"}`, dentistID)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	dentista, _ := body["dentista"].(map[string]interface{})
	id, _ := dentista["id"].(string)
	return id
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	c, rec := authedContext(e, http.MethodPost, "/",
		`{"nome":"Dra. Beatriz","especialidade":"Ortodontia"}`, uuid.New())

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	dentista, _ := body["dentista"].(map[string]interface{})
	if dentista["ativo"] != true {
		t.Errorf("expected ativo true, got %v", dentista["ativo"])
	}
}

func TestHandler_Delete_MissingPassword(t *testing.T) {
	h, e := newTestHandler()
	dentistID := uuid.New()
	id := createProfessional(t, h, e, dentistID)

	c, _ := authedContext(e, http.MethodDelete, "/", `{}`, dentistID)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_Delete_WrongPassword(t *testing.T) {
	h, e := newTestHandler()
	dentistID := uuid.New()
	id := createProfessional(t, h, e, dentistID)

	c, _ := authedContext(e, http.MethodDelete, "/", `{"senha":"errada"}`, dentistID)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestHandler_Delete_CorrectPassword(t *testing.T) {
	h, e := newTestHandler()
	dentistID := uuid.New()
	id := createProfessional(t, h, e, dentistID)

	c, rec := authedContext(e, http.MethodDelete, "/", `{"senha":"segredo123"}`, dentistID)
	c.SetParamNames("id")
	c.SetParamValues(id)

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	c, rec = authedContext(e, http.MethodGet, "/", "", dentistID)
	if err := h.List(c); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty roster after delete, got %s", rec.Body.String())
	}
}
