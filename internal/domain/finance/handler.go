package finance

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
	authed.GET("/financeiro", h.ListEntries)
	authed.POST("/financeiro", h.CreateEntry)
	authed.GET("/financeiro/:id", h.GetEntry)
	authed.PUT("/financeiro/:id", h.UpdateEntry)
	authed.DELETE("/financeiro/:id", h.DeleteEntry)

	authed.GET("/notas", h.ListInvoices)
	authed.POST("/notas", h.CreateInvoice)
}

func (h *Handler) CreateEntry(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	var e Entry
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	if err := h.svc.CreateEntry(c.Request().Context(), ident.ID, &e); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		}
		return err
	}

	return httpx.OK(c, http.StatusCreated, echo.Map{"lancamento": e})
}

func (h *Handler) GetEntry(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrEntryNotFound.Error())
	}

	e, err := h.svc.GetEntry(c.Request().Context(), ident.ID, id)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrEntryNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"lancamento": e})
}

func (h *Handler) ListEntries(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	f := EntryFilter{
		Type:   c.QueryParam("tipo"),
		Status: c.QueryParam("status"),
		Month:  c.QueryParam("mes"),
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListEntries(c.Request().Context(), ident.ID, f, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Entry{}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{
		"lancamentos": pagination.NewResponse(items, total, pg.Limit, pg.Offset),
	})
}

func (h *Handler) UpdateEntry(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrEntryNotFound.Error())
	}

	var e Entry
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	e.ID = id

	if err := h.svc.UpdateEntry(c.Request().Context(), ident.ID, &e); err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		case errors.Is(err, ErrEntryNotFound):
			return echo.NewHTTPError(http.StatusNotFound, ErrEntryNotFound.Error())
		default:
			return err
		}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"lancamento": e})
}

func (h *Handler) DeleteEntry(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, ErrEntryNotFound.Error())
	}

	if err := h.svc.DeleteEntry(c.Request().Context(), ident.ID, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrEntryNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"mensagem": "lançamento removido"})
}

func (h *Handler) CreateInvoice(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	var inv Invoice
	if err := c.Bind(&inv); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	if err := h.svc.CreateInvoice(c.Request().Context(), ident.ID, &inv); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		}
		return err
	}

	return httpx.OK(c, http.StatusCreated, echo.Map{"nota": inv})
}

func (h *Handler) ListInvoices(c echo.Context) error {
	ident, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListInvoices(c.Request().Context(), ident.ID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Invoice{}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{
		"notas": pagination.NewResponse(items, total, pg.Limit, pg.Offset),
	})
}
