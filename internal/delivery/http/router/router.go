// Package router contains routing for the HTTP delivery.
package router

import (
	"survey/config"
	"survey/internal/delivery/http/middleware"
	"survey/internal/delivery/http/router/handler"
	"survey/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	OAuthHandler   *handler.OAuthHandler
	SurveyHandler  *handler.SurveyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	oauthHandler   *handler.OAuthHandler
	surveyHandler  *handler.SurveyHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		oauthHandler:   params.OAuthHandler,
		surveyHandler:  params.SurveyHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up every route. The guard of each route is fixed here.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	requireSession := r.authMiddleware.RequireSession
	requireToken := r.authMiddleware.RequireToken
	loadSession := r.authMiddleware.LoadSession

	// Public pages
	e.GET("/", r.surveyHandler.Index, loadSession)
	e.GET("/survey/:id/qr", r.surveyHandler.QR)

	// Local accounts
	e.GET("/register", r.authHandler.ShowRegister, loadSession)
	e.POST("/register", r.authHandler.Register)
	e.GET("/login", r.authHandler.ShowLogin, loadSession)
	e.POST("/login", r.authHandler.Login)
	e.GET("/logout", r.authHandler.Logout, requireSession)

	// External providers
	e.GET("/login/:provider", r.oauthHandler.Begin)
	e.GET("/login/:provider/authorized", r.oauthHandler.Callback)

	// Surveys
	e.GET("/create_survey", r.surveyHandler.ShowCreate, requireToken)
	e.POST("/create_survey", r.surveyHandler.Create, requireToken)
	e.GET("/edit_survey/:id", r.surveyHandler.ShowEdit, requireSession)
	e.POST("/edit_survey/:id", r.surveyHandler.Edit, requireSession)
	e.GET("/take_survey/:id", r.surveyHandler.ShowTake, requireSession)
	e.POST("/take_survey/:id", r.surveyHandler.Take, requireSession)
	e.GET("/survey_results/:id", r.surveyHandler.Results, requireSession)
	e.POST("/delete_survey/:id", r.surveyHandler.Delete, requireSession)
}
