// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "survey/internal/delivery/context"
	"survey/internal/delivery/http/session"
	"survey/internal/delivery/http/view"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pages renders templates and flash-then-redirect responses against the session store.
type pages struct {
	sessions *session.Store
}

func (p pages) render(c echo.Context, status int, name string, data any, extraFlashes ...string) error {
	page := view.Page{
		User:    deliverycontext.GetUser(c),
		Flashes: append(p.sessions.Flashes(c), extraFlashes...),
		Data:    data,
	}

	return errors.WithStack(c.Render(status, name, page))
}

func (p pages) renderPage(c echo.Context, status int, name string, page view.Page) error {
	page.User = deliverycontext.GetUser(c)
	page.Flashes = append(p.sessions.Flashes(c), page.Flashes...)

	return errors.WithStack(c.Render(status, name, page))
}

func (p pages) redirectWithFlash(c echo.Context, location, message string) error {
	if err := p.sessions.AddFlash(c, message); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, location)
}

// HealthCheck answers the liveness probe.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
