package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. A row carries either a password hash or an
// (oauth_provider, oauth_id) pair, never both; the migration enforces it with a check constraint.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username      string    `gorm:"type:varchar(150);uniqueIndex:idx_users_username;not null"`
	Email         *string   `gorm:"type:varchar(255);index:idx_users_email"`
	PasswordHash  *string   `gorm:"type:varchar(255)"`
	OAuthProvider *string   `gorm:"column:oauth_provider;type:varchar(20);uniqueIndex:idx_users_oauth_identity"`
	OAuthID       *string   `gorm:"column:oauth_id;type:varchar(255);uniqueIndex:idx_users_oauth_identity"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
