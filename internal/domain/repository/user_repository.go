// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"survey/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the Identity Store. Username is unique across all accounts and
// (provider, external id) is unique across federated accounts; a violation of
// either surfaces as domainerrors.ErrConflict.
type UserRepository interface {
	// CreateLocal persists a password account.
	CreateLocal(ctx context.Context, username, passwordHash, email string) (*entity.User, error)

	// CreateOAuth persists a federated account.
	CreateOAuth(ctx context.Context, provider entity.ProviderType, externalID, username, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByOAuth retrieves the federated account for a provider-scoped external id.
	FindByOAuth(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.User, error)
}
