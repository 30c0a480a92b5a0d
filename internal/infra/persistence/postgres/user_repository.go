// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateLocal persists a password account.
func (repo *userRepository) CreateLocal(ctx context.Context, username, passwordHash, email string) (*entity.User, error) {
	userM := &model.UserModel{
		Username:     username,
		Email:        nullableString(email),
		PasswordHash: &passwordHash,
	}

	if err := repo.create(ctx, userM); err != nil {
		return nil, err
	}

	return toUserDomain(userM), nil
}

// CreateOAuth persists a federated account. A duplicate username or a duplicate
// (provider, external id) pair both surface as ErrConflict; callers tell them apart
// by looking the identity up again.
func (repo *userRepository) CreateOAuth(
	ctx context.Context,
	provider entity.ProviderType,
	externalID, username, email string,
) (*entity.User, error) {
	providerName := provider.String()
	userM := &model.UserModel{
		Username:      username,
		Email:         nullableString(email),
		OAuthProvider: &providerName,
		OAuthID:       &externalID,
	}

	if err := repo.create(ctx, userM); err != nil {
		return nil, err
	}

	return toUserDomain(userM), nil
}

func (repo *userRepository) create(ctx context.Context, userM *model.UserModel) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate user id")
	}
	userM.ID = id
	userM.CreatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("username or external identity already exists")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("incomplete user identity")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by username", "username = ?", username)
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by id", "id = ?", id)
}

// FindByOAuth retrieves the federated account for a provider-scoped external id.
func (repo *userRepository) FindByOAuth(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by external identity",
		"oauth_provider = ? AND oauth_id = ?", provider.String(), externalID)
}

func (repo *userRepository) first(ctx context.Context, failMsg string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, failMsg)
	}

	return toUserDomain(&userM), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity, folding the
// nullable identity columns into the Identity variant.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		CreatedAt: data.CreatedAt,
	}
	if data.Email != nil {
		user.Email = *data.Email
	}

	switch {
	case data.OAuthProvider != nil && data.OAuthID != nil:
		user.Identity = &entity.OAuthIdentity{
			Provider:   entity.ProviderType(*data.OAuthProvider),
			ExternalID: *data.OAuthID,
		}
	case data.PasswordHash != nil:
		user.Identity = &entity.LocalIdentity{PasswordHash: *data.PasswordHash}
	}

	return user
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
