package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinica/clinica/internal/platform/auth"
	"github.com/clinica/clinica/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(authed *echo.Group) {
	authed.GET("/dashboard", h.Summary)
}

func (h *Handler) Summary(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	sum, err := h.svc.Summarize(c.Request().Context(), ident.ID)
	if err != nil {
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"dashboard": sum})
}
