// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"survey/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository stores server-side sessions keyed by the hash of their cookie value.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByHash retrieves a live session. Expired sessions return ErrSessionExpired.
	FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByHash ends a session. Deleting an absent session is not an error.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes sessions that expired before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// RevocationRepository is the bearer-token revocation list.
type RevocationRepository interface {
	// Revoke records jti as unusable until expiresAt.
	Revoke(ctx context.Context, token *entity.RevokedToken) error

	// IsRevoked reports whether jti is on the list.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// DeleteExpired drops entries whose token has expired anyway and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
