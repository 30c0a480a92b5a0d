package usecase

import (
	"context"

	"survey/internal/domain/entity"
	"survey/internal/domain/service"
)

// IdentityUsecase runs external-provider sign-in and reconciles provider identities
// with local user records.
type IdentityUsecase interface {
	// Enabled reports whether provider has client credentials.
	Enabled(provider entity.ProviderType) bool

	// BeginOAuth returns the provider consent URL carrying state.
	BeginOAuth(ctx context.Context, provider entity.ProviderType, state string) (string, error)

	// CompleteOAuth exchanges the callback code, reconciles the user and signs them in.
	CompleteOAuth(ctx context.Context, provider entity.ProviderType, code string) (*SignInOutput, error)

	// FindOrCreateOAuth returns the user for the profile's (provider, external id),
	// creating it on first sight. Concurrent first sign-ins resolve to one record.
	FindOrCreateOAuth(ctx context.Context, profile *service.OAuthUser) (*entity.User, error)
}
