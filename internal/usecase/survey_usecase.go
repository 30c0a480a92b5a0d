package usecase

import (
	"context"

	"survey/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxSurveyTitleLength bounds titles on create and edit. It matches the width of
// the surveys.title column.
const MaxSurveyTitleLength = 255

// CreateSurveyInput defines the data required to create a survey.
type CreateSurveyInput struct {
	OwnerID   uuid.UUID
	Title     string
	Questions []string
}

// EditSurveyInput replaces a survey's editable fields.
type EditSurveyInput struct {
	SurveyID    uuid.UUID
	RequesterID uuid.UUID
	Title       string
	Description string
	Questions   []string
}

// SubmitResponseInput carries one answer per survey question, in question order.
type SubmitResponseInput struct {
	SurveyID     uuid.UUID
	RespondentID uuid.UUID
	Answers      []string
}

// SurveyUsecase is survey and response CRUD with ownership checks. Every ownership
// failure, and every missing survey, is ErrNotFoundOrForbidden.
type SurveyUsecase interface {
	CreateSurvey(ctx context.Context, input CreateSurveyInput) (*entity.Survey, error)
	GetSurvey(ctx context.Context, surveyID uuid.UUID) (*entity.Survey, error)
	ListSurveys(ctx context.Context) ([]*entity.Survey, error)
	EditSurvey(ctx context.Context, input EditSurveyInput) (*entity.Survey, error)
	DeleteSurvey(ctx context.Context, surveyID, requesterID uuid.UUID) error
	SubmitResponse(ctx context.Context, input SubmitResponseInput) (*entity.Response, error)
	ListResponses(ctx context.Context, surveyID, requesterID uuid.UUID) ([]*entity.Response, error)

	// ShareQR renders the take-survey link of an existing survey as a PNG.
	ShareQR(ctx context.Context, surveyID uuid.UUID) ([]byte, error)
}
