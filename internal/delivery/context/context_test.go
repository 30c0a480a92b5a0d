package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"survey/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRequestIDAndUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))
	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))
	assert.Equal(t, "req-42", GetRequestIDFromContext(WithRequestID(context.Background(), "req-42")))

	assert.Nil(t, GetUser(c))
	user := &entity.User{Username: "alice"}
	SetUser(c, user)
	assert.Same(t, user, GetUser(c))
}
