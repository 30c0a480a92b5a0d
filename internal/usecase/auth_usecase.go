// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"survey/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LogoutInput carries the credentials presented on logout. Either may be empty.
type LogoutInput struct {
	SessionID string
	Token     string
}

// --- Output DTOs ---

// SignInOutput describes the credentials established by a successful sign-in.
type SignInOutput struct {
	User *entity.User

	// SessionID is the raw server session id; only its hash is stored.
	SessionID        string
	SessionExpiresAt time.Time

	// Token is the bearer token for the jwt_token cookie. Empty when none was issued.
	Token          string
	TokenExpiresAt time.Time
}

// AuthUsecase covers local accounts and both request guards.
type AuthUsecase interface {
	// Register creates a local account and signs it in with a server session.
	Register(ctx context.Context, input RegisterInput) (*SignInOutput, error)

	// Login verifies the credential, opens a server session and issues a bearer token.
	Login(ctx context.Context, input LoginInput) (*SignInOutput, error)

	// Logout ends the server session and revokes the bearer token.
	Logout(ctx context.Context, input LogoutInput) error

	// VerifyCredential returns the user for a valid username and password. Unknown
	// users, OAuth-only accounts and wrong passwords all yield ErrInvalidCredentials.
	VerifyCredential(ctx context.Context, username, password string) (*entity.User, error)

	// AuthorizeSession resolves a raw session id to its user or ErrTokenInvalid.
	AuthorizeSession(ctx context.Context, sessionID string) (*entity.User, error)

	// AuthorizeToken resolves a bearer token to its user or ErrTokenInvalid.
	AuthorizeToken(ctx context.Context, token string) (*entity.User, error)
}
