package clinical

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinica/clinica/internal/platform/auth"
	"github.com/clinica/clinica/internal/platform/httpx"
	"github.com/clinica/clinica/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(authed *echo.Group) {
	authed.GET("/prontuarios", h.List)
	authed.POST("/prontuarios", h.Create)
	authed.GET("/prontuarios/:id", h.Get)
}

func (h *Handler) Create(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	var in NoteInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	n, err := h.svc.Create(c.Request().Context(), ident.ID, in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		}
		return err
	}

	return httpx.OK(c, http.StatusCreated, echo.Map{"prontuario": n})
}

func (h *Handler) Get(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}

	n, err := h.svc.Get(c.Request().Context(), ident.ID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"prontuario": n})
}

func (h *Handler) List(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	var patientID *uuid.UUID
	if raw := c.QueryParam("paciente_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "paciente_id inválido")
		}
		patientID = &id
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), ident.ID, patientID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Note{}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{
		"prontuarios": pagination.NewResponse(items, total, pg.Limit, pg.Offset),
	})
}
