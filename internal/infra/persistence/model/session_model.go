package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. Only the hash of the cookie value is stored.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex:idx_sessions_token_hash;not null"`
	ExpiresAt time.Time `gorm:"not null;index:idx_sessions_expires_at"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// RevokedTokenModel mirrors the 'revoked_tokens' table.
type RevokedTokenModel struct {
	JTI       string    `gorm:"column:jti;type:varchar(64);primaryKey"`
	ExpiresAt time.Time `gorm:"not null;index:idx_revoked_tokens_expires_at"`
}

// TableName explicitly sets the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}

// All lists every model, in creation order, for AutoMigrate in tests.
func All() []any {
	return []any{
		&UserModel{},
		&SurveyModel{},
		&ResponseModel{},
		&SessionModel{},
		&RevokedTokenModel{},
	}
}
