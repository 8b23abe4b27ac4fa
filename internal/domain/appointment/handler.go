package appointment

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

// RegisterRoutes wires the dentist-facing CRUD on the authenticated group
// and the code-keyed confirmation endpoints on the public group.
func (h *Handler) RegisterRoutes(public, authed *echo.Group) {
	authed.GET("/agendamentos", h.List)
	authed.POST("/agendamentos", h.Create)
	authed.GET("/agendamentos/:id", h.Get)
	authed.PUT("/agendamentos/:id", h.Update)
	authed.DELETE("/agendamentos/:id", h.Delete)

	public.GET("/agendamentos/buscar-codigo/:codigo", h.FindByCode)
	public.POST("/agendamentos/confirmar", h.Confirm)
}

func (h *Handler) Create(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	if err := h.svc.Create(c.Request().Context(), ident.ID, &a); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		}
		return err
	}

	return httpx.OK(c, http.StatusCreated, echo.Map{"agendamento": a})
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

	a, err := h.svc.Get(c.Request().Context(), ident.ID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"agendamento": a})
}

func (h *Handler) List(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), ident.ID, c.QueryParam("data"), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Appointment{}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{
		"agendamentos": pagination.NewResponse(items, total, pg.Limit, pg.Offset),
	})
}

func (h *Handler) Update(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}

	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	a.ID = id

	if err := h.svc.Update(c.Request().Context(), ident.ID, &a); err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		default:
			return err
		}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"agendamento": a})
}

func (h *Handler) Delete(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	}

	if err := h.svc.Delete(c.Request().Context(), ident.ID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"mensagem": "agendamento removido"})
}

// FindByCode is public: possession of the code is the credential.
func (h *Handler) FindByCode(c echo.Context) error {
	view, err := h.svc.FindByCode(c.Request().Context(), c.Param("codigo"))
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrCodeNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"agendamento": view})
}

// Confirm is public: applies the patient's confirm/cancel action.
func (h *Handler) Confirm(c echo.Context) error {
	var in ConfirmInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	view, err := h.svc.Confirm(c.Request().Context(), in)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		case errors.Is(err, ErrCodeNotFound):
			return echo.NewHTTPError(http.StatusNotFound, ErrCodeNotFound.Error())
		default:
			return err
		}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"agendamento": view})
}
