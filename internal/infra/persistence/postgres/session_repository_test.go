package postgres

import (
	"context"
	"testing"
	"time"

	"survey/internal/domain/entity"
	"survey/internal/domain/repository"
	"survey/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(testdb.Open(t))
	userID := uuid.New()
	now := time.Now()

	live := &entity.Session{UserID: userID, TokenHash: "live-hash", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, live))
	assert.NotEqual(t, uuid.Nil, live.ID)

	expired := &entity.Session{UserID: userID, TokenHash: "expired-hash", ExpiresAt: now.Add(-time.Minute)}
	require.NoError(t, repo.Create(ctx, expired))

	found, err := repo.FindByHash(ctx, "live-hash")
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)

	_, err = repo.FindByHash(ctx, "expired-hash")
	assert.ErrorIs(t, err, repository.ErrSessionExpired)

	_, err = repo.FindByHash(ctx, "unknown")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	_, err = repo.FindByHash(ctx, "expired-hash")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, repo.DeleteByHash(ctx, "live-hash"))
	require.NoError(t, repo.DeleteByHash(ctx, "live-hash"))
	_, err = repo.FindByHash(ctx, "live-hash")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRevocationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRevocationRepository(testdb.Open(t))
	now := time.Now()

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, &entity.RevokedToken{JTI: "jti-1", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Revoke(ctx, &entity.RevokedToken{JTI: "jti-1", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Revoke(ctx, &entity.RevokedToken{JTI: "jti-old", ExpiresAt: now.Add(-time.Hour)}))

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	revoked, err = repo.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}
