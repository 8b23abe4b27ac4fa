package account

import (
	"errors"
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

// RegisterRoutes wires the public auth endpoints and the bearer-protected
// profile endpoints.
func (h *Handler) RegisterRoutes(public, authed *echo.Group) {
	public.POST("/auth/register", h.Register)
	public.POST("/auth/login", h.Login)

	authed.GET("/auth/verify", h.Verify)
	authed.PUT("/auth/perfil", h.UpdateProfile)
	authed.DELETE("/auth/conta", h.Deactivate)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	d, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		case errors.Is(err, ErrEmailTaken):
			return echo.NewHTTPError(http.StatusBadRequest, ErrEmailTaken.Error())
		default:
			return err
		}
	}

	return httpx.OK(c, http.StatusCreated, echo.Map{"dentista": d})
}

func (h *Handler) Login(c echo.Context) error {
	var in LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	d, token, err := h.svc.Login(c.Request().Context(), in)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
		case errors.Is(err, ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
		case errors.Is(err, ErrInactiveAccount):
			return echo.NewHTTPError(http.StatusForbidden, ErrInactiveAccount.Error())
		default:
			return err
		}
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"token": token, "dentista": d})
}

func (h *Handler) Verify(c echo.Context) error {
	ident, ok := auth.FromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "token inválido ou expirado")
	}

	d, err := h.svc.Get(c.Request().Context(), ident.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "token inválido ou expirado")
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"dentista": d})
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	ident, ok := auth.FromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "token inválido ou expirado")
	}

	var in ProfileInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}

	d, err := h.svc.UpdateProfile(c.Request().Context(), ident.ID, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"dentista": d})
}

func (h *Handler) Deactivate(c echo.Context) error {
	ident, ok := auth.FromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "token inválido ou expirado")
	}

	if err := h.svc.Deactivate(c.Request().Context(), ident.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return err
	}

	return httpx.OK(c, http.StatusOK, echo.Map{"mensagem": "conta desativada"})
}
