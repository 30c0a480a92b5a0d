package oauth

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"survey/config"
	"survey/internal/domain/entity"
	"survey/internal/domain/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const githubProfileURL = "https://api.github.com/user"

// NewGitHubProvider creates the GitHub identity provider.
func NewGitHubProvider(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	return &provider{
		providerType: entity.ProviderTypeGitHub,
		config: &oauth2.Config{
			ClientID:     cfg.OAuth.GitHub.ClientID,
			ClientSecret: cfg.OAuth.GitHub.ClientSecret,
			Endpoint:     github.Endpoint,
			RedirectURL:  redirectURL(cfg, entity.ProviderTypeGitHub),
			Scopes:       []string{"user:email"},
		},
		profileURL: githubProfileURL,
		decode:     decodeGitHubProfile,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		logger:     logger,
	}
}

// decodeGitHubProfile reads the /user payload. GitHub ids are numeric.
func decodeGitHubProfile(body io.Reader) (*service.OAuthUser, error) {
	var data struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(body).Decode(&data); err != nil {
		return nil, err
	}

	user := &service.OAuthUser{
		Username: data.Login,
		Email:    data.Email,
	}
	if data.ID != 0 {
		user.ExternalID = strconv.FormatInt(data.ID, 10)
	}

	return user, nil
}
