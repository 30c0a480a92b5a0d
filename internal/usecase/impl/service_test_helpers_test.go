package impl

import (
	"io"
	"log/slog"
	"time"

	"survey/config"
	"survey/internal/domain/entity"
	"survey/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Domain: "https://survey.example",
		Auth: &config.AuthConfig{
			TokenTTL:   24 * time.Hour,
			SessionTTL: time.Hour,
		},
	}
	cfg.SecretKey.Token = "test-token-secret"
	cfg.SecretKey.Session = "test-session-secret"

	return cfg
}

func newLocalUser(username, hash string) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Username:  username,
		Identity:  &entity.LocalIdentity{PasswordHash: hash},
		CreatedAt: time.Now().UTC(),
	}
}

func newOAuthUser(provider entity.ProviderType, externalID, username string) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Username:  username,
		Identity:  &entity.OAuthIdentity{Provider: provider, ExternalID: externalID},
		CreatedAt: time.Now().UTC(),
	}
}

func newTestClaims(username, jti string, expiresAt time.Time) *service.Claims {
	return &service.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}
