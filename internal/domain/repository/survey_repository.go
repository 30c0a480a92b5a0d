package repository

import (
	"context"
	"errors"

	"survey/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSurveyNotFound is returned when a survey does not exist.
var ErrSurveyNotFound = errors.New("survey not found")

// SurveyRepository persists surveys. Ownership is enforced by the use case layer
// before any mutation reaches the store.
type SurveyRepository interface {
	// Create persists a new survey and fills its ID and CreatedAt.
	Create(ctx context.Context, survey *entity.Survey) error

	// FindByID retrieves a survey by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Survey, error)

	// List returns every survey, newest first.
	List(ctx context.Context) ([]*entity.Survey, error)

	// Update replaces title, description and questions.
	Update(ctx context.Context, survey *entity.Survey) error

	// Delete removes a survey. Deleting an absent survey returns ErrSurveyNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResponseRepository persists survey responses.
type ResponseRepository interface {
	// Create persists a new response and fills its ID and CreatedAt.
	Create(ctx context.Context, response *entity.Response) error

	// ListBySurveyID returns all responses for a survey, oldest first.
	ListBySurveyID(ctx context.Context, surveyID uuid.UUID) ([]*entity.Response, error)

	// DeleteBySurveyID removes all responses for a survey and returns how many were removed.
	DeleteBySurveyID(ctx context.Context, surveyID uuid.UUID) (int64, error)

	// DeleteOrphaned removes responses whose survey no longer exists.
	DeleteOrphaned(ctx context.Context) (int64, error)
}
