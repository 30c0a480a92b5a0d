package service

import (
	"context"

	"survey/internal/domain/entity"
)

// OAuthUser is the normalized profile an identity provider returns.
type OAuthUser struct {
	Provider   entity.ProviderType // The OAuth provider
	ExternalID string              // Provider-scoped user id
	Username   string              // Provider login, may be empty
	Email      string              // May be empty
}

// IdentityProvider runs the authorization-code flow against one external provider.
type IdentityProvider interface {
	// Provider returns the provider type.
	Provider() entity.ProviderType

	// AuthCodeURL builds the provider consent URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a token and fetches the profile.
	// Token failures are domainerrors.ErrUpstreamAuthFailure; profile failures are
	// domainerrors.ErrUpstreamProfileFailure.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)
}
