package worker

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"survey/config"
	"survey/internal/delivery/worker/handler"
	"survey/internal/domain/service"
	"survey/internal/infra/pubsub"
	mockUsecase "survey/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConsumer(t *testing.T) (*echo.Echo, *mockUsecase.MockMaintenanceUsecase) {
	t.Helper()

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)

	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:      cfg,
		Logger:      logger,
		Maintenance: maintenance,
	})

	return newConsumerEcho(cfg, logger, push), maintenance
}

func TestConsumer_Health(t *testing.T) {
	e, _ := newTestConsumer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestConsumer_PushReconcilesDeletedSurvey(t *testing.T) {
	e, maintenance := newTestConsumer(t)
	surveyID := uuid.New()
	maintenance.EXPECT().ReconcileSurvey(mock.Anything, surveyID).Return(int64(2), nil)

	data, err := json.Marshal(service.SurveyEvent{Type: service.EventSurveyDeleted, SurveyID: surveyID.String()})
	require.NoError(t, err)
	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestConsumer_MetricsExposed(t *testing.T) {
	e, _ := newTestConsumer(t)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "survey_http_requests_total"))
}
