package postgres

import (
	"context"
	"time"

	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/repository"
	"survey/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db, now: time.Now}
}

// Create persists a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate session id")
	}

	sessionM := &model.SessionModel{
		ID:        id,
		UserID:    session.UserID,
		TokenHash: session.TokenHash,
		ExpiresAt: session.ExpiresAt.UTC(),
		CreatedAt: repo.now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("session already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByHash retrieves a live session by the hash of its cookie value.
func (repo *sessionRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Take(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session")
	}

	session := &entity.Session{
		ID:        sessionM.ID,
		UserID:    sessionM.UserID,
		TokenHash: sessionM.TokenHash,
		ExpiresAt: sessionM.ExpiresAt,
		CreatedAt: sessionM.CreatedAt,
	}

	if session.IsExpired(repo.now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// DeleteByHash ends a session.
func (repo *sessionRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.SessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteExpired removes sessions that expired at or before now.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

// revocationRepository keeps the bearer-token revocation list in the revoked_tokens table.
type revocationRepository struct {
	db *gorm.DB
}

// NewRevocationRepository is the constructor for revocationRepository.
func NewRevocationRepository(db *gorm.DB) repository.RevocationRepository {
	return &revocationRepository{db: db}
}

// Revoke records jti. Revoking an already revoked token is a no-op.
func (repo *revocationRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := &model.RevokedTokenModel{
		JTI:       token.JTI,
		ExpiresAt: token.ExpiresAt.UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tokenM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke token")
	}

	return nil
}

// IsRevoked reports whether jti is on the list.
func (repo *revocationRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RevokedTokenModel{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check token revocation")
	}

	return count > 0, nil
}

// DeleteExpired drops entries whose token has expired anyway.
func (repo *revocationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&model.RevokedTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired revocations")
	}

	return result.RowsAffected, nil
}
