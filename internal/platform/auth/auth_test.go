package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm, err := NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id := uuid.New()
	token, err := tm.Issue(id, "ana@example.com", "Dra. Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.DentistID != id.String() {
		t.Errorf("expected dentist id %s, got %s", id, claims.DentistID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("expected email ana@example.com, got %s", claims.Email)
	}
	if claims.Name != "Dra. Ana" {
		t.Errorf("expected name Dra. Ana, got %s", claims.Name)
	}
}

func TestTokenManager_RejectsTampered(t *testing.T) {
	tm, _ := NewTokenManager("test-secret")
	other, _ := NewTokenManager("other-secret")

	token, err := other.Issue(uuid.New(), "x@example.com", "X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := tm.Verify(token); err == nil {
		t.Error("expected verification to fail for foreign-signed token")
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm, _ := NewTokenManager("test-secret")
	if _, err := tm.Verify("not-a-token"); err == nil {
		t.Error("expected verification to fail for malformed token")
	}
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	if _, err := NewTokenManager(""); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("senha123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "senha123" {
		t.Error("expected hash to differ from password")
	}
	if !CheckPassword("senha123", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPassword("senha124", hash) {
		t.Error("expected wrong password to fail")
	}
}

func newAuthedContext(t *testing.T, tm *TokenManager, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMiddleware_MissingHeader(t *testing.T) {
	tm, _ := NewTokenManager("test-secret")
	c, _ := newAuthedContext(t, tm, "")

	h := Middleware(tm)(func(c echo.Context) error {
		t.Error("handler should not run without a token")
		return nil
	})

	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMiddleware_BadToken(t *testing.T) {
	tm, _ := NewTokenManager("test-secret")
	c, _ := newAuthedContext(t, tm, "Bearer bogus")

	h := Middleware(tm)(func(c echo.Context) error { return nil })

	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMiddleware_AttachesIdentity(t *testing.T) {
	tm, _ := NewTokenManager("test-secret")
	id := uuid.New()
	token, _ := tm.Issue(id, "ana@example.com", "Dra. Ana")
	c, _ := newAuthedContext(t, tm, "Bearer "+token)

	h := Middleware(tm)(func(c echo.Context) error {
		ident, ok := FromContext(c)
		if !ok {
			t.Fatal("expected identity in context")
		}
		if ident.ID != id {
			t.Errorf("expected id %s, got %s", id, ident.ID)
		}
		return c.String(http.StatusOK, "ok")
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
