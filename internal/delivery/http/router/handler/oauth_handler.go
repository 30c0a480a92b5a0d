package handler

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "survey/internal/delivery/context"
	"survey/internal/delivery/http/session"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

// OAuthHandler runs the authorization-code flow against GitHub and Yandex.
type OAuthHandler struct {
	pages
	identity usecase.IdentityUsecase
	logger   *slog.Logger
}

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	Identity usecase.IdentityUsecase
	Sessions *session.Store
	Logger   *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		pages:    pages{sessions: params.Sessions},
		identity: params.Identity,
		logger:   params.Logger,
	}
}

func (h *OAuthHandler) provider(c echo.Context) (entity.ProviderType, error) {
	provider := entity.ProviderType(c.Param("provider"))
	if !h.identity.Enabled(provider) {
		return "", echo.ErrNotFound
	}

	return provider, nil
}

// Begin stores a fresh state in the session and redirects to the provider's consent page.
func (h *OAuthHandler) Begin(c echo.Context) error {
	provider, err := h.provider(c)
	if err != nil {
		return err
	}

	// 32 random bytes, base64url encoded.
	state := oauth2.GenerateVerifier()
	if err := h.sessions.SetOAuthState(c, state); err != nil {
		return err
	}

	url, err := h.identity.BeginOAuth(c.Request().Context(), provider, state)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, url)
}

// Callback completes the flow. Every failure ends on the login page with a message.
func (h *OAuthHandler) Callback(c echo.Context) error {
	provider, err := h.provider(c)
	if err != nil {
		return err
	}
	name := provider.DisplayName()
	loginFailed := fmt.Sprintf("Failed to log in with %s.", name)

	expected, err := h.sessions.PopOAuthState(c)
	if err != nil {
		return err
	}
	state, code := c.QueryParam("state"), c.QueryParam("code")
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 ||
		code == "" || c.QueryParam("error") != "" {
		return h.redirectWithFlash(c, "/login", loginFailed)
	}

	output, err := h.identity.CompleteOAuth(c.Request().Context(), provider, code)
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
		logger.Warn("OAuth sign-in failed", slog.String("provider", provider.String()), slog.Any("error", err))

		var appErr domainerrors.AppError
		switch {
		case errors.Is(err, domainerrors.ErrUpstreamProfileFailure):
			return h.redirectWithFlash(c, "/login", fmt.Sprintf("Failed to fetch user info from %s.", name))
		case errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError,
			errors.Is(err, domainerrors.ErrUpstreamAuthFailure):
			return h.redirectWithFlash(c, "/login", loginFailed)
		default:
			return errors.WithStack(err)
		}
	}

	if err := h.sessions.SignIn(c, output); err != nil {
		return err
	}

	return h.redirectWithFlash(c, "/", fmt.Sprintf("Successfully signed in with %s.", name))
}
