package handler

import (
	"log/slog"
	"net/http"

	"survey/internal/delivery/http/session"
	"survey/internal/delivery/http/view"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type credentialsForm struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required,max=256"`
	Email    string `form:"email" validate:"omitempty,email,max=254"`
}

// AuthHandler serves local registration, login and logout.
type AuthHandler struct {
	pages
	auth     usecase.AuthUsecase
	identity usecase.IdentityUsecase
	logger   *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Auth     usecase.AuthUsecase
	Identity usecase.IdentityUsecase
	Sessions *session.Store
	Logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		pages:    pages{sessions: params.Sessions},
		auth:     params.Auth,
		identity: params.Identity,
		logger:   params.Logger,
	}
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return h.render(c, http.StatusOK, view.PageRegister, nil)
}

// Register creates a local account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return h.redirectWithFlash(c, "/register", "Invalid registration input")
	}
	if err := c.Validate(&form); err != nil {
		return h.redirectWithFlash(c, "/register", "Username and password are required")
	}

	output, err := h.auth.Register(c.Request().Context(), usecase.RegisterInput{
		Username: form.Username,
		Password: form.Password,
		Email:    form.Email,
	})
	switch {
	case errors.Is(err, domainerrors.ErrConflict):
		return h.redirectWithFlash(c, "/register", domainerrors.ErrConflict.Message())
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return h.redirectWithFlash(c, "/register", "Username and password are required")
	case err != nil:
		return errors.WithStack(err)
	}

	if err := h.sessions.SignIn(c, output); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

// ShowLogin renders the login form with the configured identity providers.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return h.renderPage(c, http.StatusOK, view.PageLogin, view.Page{Providers: h.enabledProviders()})
}

// Login verifies the credential and issues both the session and the token cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
		return h.loginFailed(c)
	}

	output, err := h.auth.Login(c.Request().Context(), usecase.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		return h.loginFailed(c)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessions.SignIn(c, output); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) loginFailed(c echo.Context) error {
	return h.renderPage(c, http.StatusOK, view.PageLogin, view.Page{
		Providers: h.enabledProviders(),
		Flashes:   []string{domainerrors.ErrInvalidCredentials.Message()},
	})
}

// Logout ends the server session, revokes the presented token and clears both cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	err := h.auth.Logout(c.Request().Context(), usecase.LogoutInput{
		SessionID: h.sessions.SessionID(c),
		Token:     h.sessions.Token(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessions.SignOut(c); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) enabledProviders() []entity.ProviderType {
	var providers []entity.ProviderType
	for _, p := range []entity.ProviderType{entity.ProviderTypeGitHub, entity.ProviderTypeYandex} {
		if h.identity.Enabled(p) {
			providers = append(providers, p)
		}
	}

	return providers
}
