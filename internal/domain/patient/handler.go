package patient

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
	authed.GET("/pacientes", h.List)
	authed.POST("/pacientes", h.Create)
	authed.GET("/pacientes/:id", h.Get)
	authed.PUT("/pacientes/:id", h.Update)
	authed.DELETE("/pacientes/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	if err := h.svc.Create(c.Request().Context(), ident.ID, &p); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		}
		return err
	}

	return httpx.OK(c, http.StatusCreated, echo.Map{"paciente": p})
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

	p, err := h.svc.Get(c.Request().Context(), ident.ID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"paciente": p})
}

func (h *Handler) List(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), ident.ID, c.QueryParam("nome"), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Patient{}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{
		"pacientes": pagination.NewResponse(items, total, pg.Limit, pg.Offset),
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

	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	p.ID = id

	if err := h.svc.Update(c.Request().Context(), ident.ID, &p); err != nil {
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

	return httpx.OK(c, http.StatusOK, echo.Map{"paciente": p})
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

	return httpx.OK(c, http.StatusOK, echo.Map{"mensagem": "paciente removido"})
}
