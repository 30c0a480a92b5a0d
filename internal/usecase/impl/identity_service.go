package impl

import (
	"context"
	"log/slog"
	"strings"

	"survey/config"
	deliverycontext "survey/internal/delivery/context"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/repository"
	"survey/internal/domain/service"
	"survey/internal/infra/metrics"
	"survey/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo          repository.UserRepository
	providers         map[entity.ProviderType]service.IdentityProvider
	issuer            *credentialIssuer
	issueTokenOnOAuth bool
	logger            *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	TokenService service.TokenService
	Providers    []service.IdentityProvider
	Config       *config.Config
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	providers := make(map[entity.ProviderType]service.IdentityProvider, len(params.Providers))
	for _, p := range params.Providers {
		providers[p.Provider()] = p
	}

	issueToken := false
	if params.Config != nil && params.Config.Auth != nil {
		issueToken = params.Config.Auth.IssueTokenOnOAuth
	}

	return &identityService{
		userRepo:          params.UserRepo,
		providers:         providers,
		issuer:            newCredentialIssuer(params.Config, params.SessionRepo, params.TokenService),
		issueTokenOnOAuth: issueToken,
		logger:            params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enabled reports whether provider is configured.
func (srv *identityService) Enabled(provider entity.ProviderType) bool {
	_, ok := srv.providers[provider]

	return ok
}

func (srv *identityService) provider(provider entity.ProviderType) (service.IdentityProvider, error) {
	p, ok := srv.providers[provider]
	if !ok {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(provider.String())
	}

	return p, nil
}

// BeginOAuth returns the consent URL for provider.
func (srv *identityService) BeginOAuth(_ context.Context, provider entity.ProviderType, state string) (string, error) {
	p, err := srv.provider(provider)
	if err != nil {
		return "", err
	}

	return p.AuthCodeURL(state), nil
}

// CompleteOAuth exchanges the code, reconciles the user and opens a session.
func (srv *identityService) CompleteOAuth(ctx context.Context, provider entity.ProviderType, code string) (*usecase.SignInOutput, error) {
	p, err := srv.provider(provider)
	if err != nil {
		return nil, err
	}

	profile, err := p.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth exchange failed",
			slog.String("provider", provider.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	user, err := srv.FindOrCreateOAuth(ctx, profile)
	if err != nil {
		return nil, err
	}

	out := &usecase.SignInOutput{}
	if err := srv.issuer.openSession(ctx, user, out); err != nil {
		return nil, err
	}
	if srv.issueTokenOnOAuth {
		if err := srv.issuer.issueToken(user, out); err != nil {
			return nil, err
		}
	}

	metrics.SignIn(provider.String())
	srv.log(ctx).Info("User signed in with provider",
		slog.String("provider", provider.String()),
		slog.String("user_id", user.ID.String()),
	)

	return out, nil
}

// FindOrCreateOAuth resolves the provider identity to a user record. The profile
// username is tried first, then the synthetic one; a conflict on the identity itself
// means a concurrent callback won and its record is returned.
func (srv *identityService) FindOrCreateOAuth(ctx context.Context, profile *service.OAuthUser) (*entity.User, error) {
	if profile == nil || !profile.Provider.IsValid() || strings.TrimSpace(profile.ExternalID) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("provider identity is incomplete")
	}

	user, err := srv.userRepo.FindByOAuth(ctx, profile.Provider, profile.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by provider identity")
	}

	synthetic := entity.SyntheticUsername(profile.Provider, profile.ExternalID)
	candidates := []string{synthetic}
	if username := strings.TrimSpace(profile.Username); username != "" && username != synthetic {
		candidates = []string{username, synthetic}
	}

	for _, username := range candidates {
		user, err := srv.userRepo.CreateOAuth(ctx, profile.Provider, profile.ExternalID, username, profile.Email)
		if err == nil {
			srv.log(ctx).Info("Created user for provider identity",
				slog.String("provider", profile.Provider.String()),
				slog.String("username", username),
			)

			return user, nil
		}
		if !errors.Is(err, domainerrors.ErrConflict) {
			return nil, errors.Wrap(err, "failed to create user for provider identity")
		}

		winner, findErr := srv.userRepo.FindByOAuth(ctx, profile.Provider, profile.ExternalID)
		if findErr == nil {
			return winner, nil
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return nil, errors.Wrap(findErr, "failed to find user by provider identity")
		}

		srv.log(ctx).Debug("Username taken, trying next candidate", slog.String("username", username))
	}

	return nil, domainerrors.ErrConflict.WrapMessage("no free username for provider identity")
}
