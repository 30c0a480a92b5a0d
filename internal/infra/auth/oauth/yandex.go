package oauth

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"survey/config"
	"survey/internal/domain/entity"
	"survey/internal/domain/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/yandex"
)

const yandexProfileURL = "https://login.yandex.ru/info?format=json"

// NewYandexProvider creates the Yandex ID identity provider.
func NewYandexProvider(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	return &provider{
		providerType: entity.ProviderTypeYandex,
		config: &oauth2.Config{
			ClientID:     cfg.OAuth.Yandex.ClientID,
			ClientSecret: cfg.OAuth.Yandex.ClientSecret,
			Endpoint:     yandex.Endpoint,
			RedirectURL:  redirectURL(cfg, entity.ProviderTypeYandex),
			Scopes:       []string{"login:info", "login:email"},
		},
		profileURL: yandexProfileURL,
		decode:     decodeYandexProfile,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		logger:     logger,
	}
}

// decodeYandexProfile reads the /info payload. A missing login is left empty so the
// reconciler can fall back to the synthetic username.
func decodeYandexProfile(body io.Reader) (*service.OAuthUser, error) {
	var data struct {
		ID           string `json:"id"`
		Login        string `json:"login"`
		DefaultEmail string `json:"default_email"`
	}
	if err := json.NewDecoder(body).Decode(&data); err != nil {
		return nil, err
	}

	return &service.OAuthUser{
		ExternalID: data.ID,
		Username:   data.Login,
		Email:      data.DefaultEmail,
	}, nil
}
