package postgres

import (
	"context"
	"testing"

	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/repository"
	"survey/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateLocal(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testdb.Open(t))

	user, err := repo.CreateLocal(ctx, "alice", "hash-1", "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	hash, ok := user.PasswordHash()
	assert.True(t, ok)
	assert.Equal(t, "hash-1", hash)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice@example.com", found.Email)
	_, isOAuth := found.OAuth()
	assert.False(t, isOAuth)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserRepository_CreateLocalDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testdb.Open(t))

	_, err := repo.CreateLocal(ctx, "alice", "hash-1", "")
	require.NoError(t, err)

	_, err = repo.CreateLocal(ctx, "alice", "hash-2", "")
	assert.True(t, errors.Is(err, domainerrors.ErrConflict), "got %v", err)
}

func TestUserRepository_OAuthIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testdb.Open(t))

	user, err := repo.CreateOAuth(ctx, entity.ProviderTypeGitHub, "583231", "octocat", "")
	require.NoError(t, err)
	assert.Empty(t, user.Email)

	found, err := repo.FindByOAuth(ctx, entity.ProviderTypeGitHub, "583231")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	identity, ok := found.OAuth()
	require.True(t, ok)
	assert.Equal(t, entity.ProviderTypeGitHub, identity.Provider)
	assert.Equal(t, "583231", identity.ExternalID)
	_, hasPassword := found.PasswordHash()
	assert.False(t, hasPassword)

	// Same external id at another provider is a different identity.
	_, err = repo.FindByOAuth(ctx, entity.ProviderTypeYandex, "583231")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.CreateOAuth(ctx, entity.ProviderTypeYandex, "583231", "octocat_ya", "")
	require.NoError(t, err)

	// Duplicate (provider, external id) conflicts even under a fresh username.
	_, err = repo.CreateOAuth(ctx, entity.ProviderTypeGitHub, "583231", "octocat2", "")
	assert.True(t, errors.Is(err, domainerrors.ErrConflict), "got %v", err)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testdb.Open(t))

	_, err := repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
