// Package handler consumes survey events pushed by Pub/Sub.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"survey/config"
	deliverycontext "survey/internal/delivery/context"
	"survey/internal/domain/service"
	"survey/internal/infra/pubsub"
	"survey/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler reconciles responses against deleted surveys as events arrive.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
	logger         *slog.Logger
	maintenance    usecase.MaintenanceUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Maintenance usecase.MaintenanceUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifyPushAuth: params.Config.PubSub != nil && params.Config.PubSub.VerifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		maintenance:    params.Maintenance,
	}
}

// HandlePush acknowledges every well-formed or hopeless message with 200 and asks
// for redelivery with 503 only when the store failed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SurveyEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse survey event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing survey event",
		slog.String("type", event.Type),
		slog.String("survey_id", event.SurveyID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process survey event",
			slog.String("survey_id", event.SurveyID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// processEvent returns an error only when a retry could succeed.
func (h *PushHandler) processEvent(ctx context.Context, event *service.SurveyEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case service.EventSurveyDeleted, service.EventResponseSubmitted:
	default:
		logger.Debug("[Worker] Ignoring survey event", slog.String("type", event.Type))

		return nil
	}

	surveyID, err := uuid.Parse(event.SurveyID)
	if err != nil {
		logger.Warn("[Worker] Dropping event with invalid survey id", slog.String("survey_id", event.SurveyID))

		return nil
	}

	deleted, err := h.maintenance.ReconcileSurvey(ctx, surveyID)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.Info("[Worker] Survey reconciled",
		slog.String("survey_id", event.SurveyID),
		slog.Int64("deleted_responses", deleted),
	)

	return nil
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.SurveyEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to authenticated push
// subscriptions. The audience is this endpoint's URL.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
