// Package middleware holds the HTTP-only middlewares: the error handler and the
// per-route credential guards.
package middleware

import (
	"context"
	"net/http"

	deliverycontext "survey/internal/delivery/context"
	"survey/internal/delivery/http/session"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginPath is where guards send unauthenticated browsers.
const LoginPath = "/login"

// AuthMiddleware guards routes with either the server session or the bearer token.
// A route declares which one at registration; no route needs both.
type AuthMiddleware struct {
	auth     usecase.AuthUsecase
	sessions *session.Store
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, sessions: sessions}
}

// RequireSession admits requests whose session cookie names a live server session.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.guard(c, next, m.sessions.SessionID(c), m.auth.AuthorizeSession)
	}
}

// RequireToken admits requests whose jwt_token cookie holds a valid, unrevoked token.
func (m *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.guard(c, next, m.sessions.Token(c), m.auth.AuthorizeToken)
	}
}

func (m *AuthMiddleware) guard(
	c echo.Context,
	next echo.HandlerFunc,
	credential string,
	authorize func(ctx context.Context, credential string) (*entity.User, error),
) error {
	if credential == "" {
		return c.Redirect(http.StatusFound, LoginPath)
	}

	user, err := authorize(c.Request().Context(), credential)
	if err != nil {
		// Expiry is routine: no message, just the login page.
		if errors.Is(err, domainerrors.ErrTokenInvalid) {
			return c.Redirect(http.StatusFound, LoginPath)
		}

		return errors.WithStack(err)
	}

	deliverycontext.SetUser(c, user)

	return next(c)
}

// LoadSession resolves the session user for pages that only show it, such as the
// navigation bar. It never redirects and ignores lookup failures.
func (m *AuthMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id := m.sessions.SessionID(c); id != "" {
			if user, err := m.auth.AuthorizeSession(c.Request().Context(), id); err == nil {
				deliverycontext.SetUser(c, user)
			}
		}

		return next(c)
	}
}
