// Package oauth implements the authorization-code flow for the supported identity providers.
package oauth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"survey/config"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxProfileBytes    = 1 << 20
)

// profileDecoder turns a provider profile response into a normalized user.
type profileDecoder func(body io.Reader) (*service.OAuthUser, error)

// provider runs the code exchange and profile fetch for one identity provider.
type provider struct {
	providerType entity.ProviderType
	config       *oauth2.Config
	profileURL   string
	decode       profileDecoder
	httpClient   *http.Client
	logger       *slog.Logger
}

// ProvidersParams holds dependencies for the provider set, injected by Fx.
type ProvidersParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProviders builds one IdentityProvider per provider that has client credentials.
func NewProviders(params ProvidersParams) []service.IdentityProvider {
	cfg := params.Config
	providers := make([]service.IdentityProvider, 0, 2)

	if cfg.OAuth.GitHub.Enabled() {
		providers = append(providers, NewGitHubProvider(cfg, params.Logger))
	} else {
		params.Logger.Info("GitHub sign-in disabled, no client credentials configured")
	}

	if cfg.OAuth.Yandex.Enabled() {
		providers = append(providers, NewYandexProvider(cfg, params.Logger))
	} else {
		params.Logger.Info("Yandex sign-in disabled, no client credentials configured")
	}

	return providers
}

// redirectURL is where the provider sends the user back after consent.
func redirectURL(cfg *config.Config, providerType entity.ProviderType) string {
	return cfg.PublicURL("/login/" + providerType.String() + "/authorized")
}

// Provider returns the provider type.
func (p *provider) Provider() entity.ProviderType {
	return p.providerType
}

// AuthCodeURL builds the consent URL carrying state.
func (p *provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and fetches the profile.
func (p *provider) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	if code == "" {
		return nil, domainerrors.ErrUpstreamAuthFailure.WrapMessage("authorization code missing")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		p.logger.WarnContext(ctx, "OAuth code exchange failed",
			slog.String("provider", p.providerType.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrUpstreamAuthFailure, err.Error())
	}
	if !token.Valid() {
		return nil, domainerrors.ErrUpstreamAuthFailure.WrapMessage("provider returned an unusable token")
	}

	user, err := p.fetchProfile(ctx, token)
	if err != nil {
		p.logger.WarnContext(ctx, "OAuth profile fetch failed",
			slog.String("provider", p.providerType.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrUpstreamProfileFailure, err.Error())
	}

	user.Provider = p.providerType

	return user, nil
}

func (p *provider) fetchProfile(ctx context.Context, token *oauth2.Token) (*service.OAuthUser, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "profile request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("profile endpoint returned status %d", resp.StatusCode)
	}

	user, err := p.decode(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}
	if user.ExternalID == "" {
		return nil, errors.New("profile has no user id")
	}

	return user, nil
}
