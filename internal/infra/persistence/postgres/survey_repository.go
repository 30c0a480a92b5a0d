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

// surveyRepository implements the domain.SurveyRepository interface using GORM.
type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository is the constructor for surveyRepository.
func NewSurveyRepository(db *gorm.DB) repository.SurveyRepository {
	return &surveyRepository{db: db}
}

// Create persists a new survey and fills its ID and CreatedAt.
func (repo *surveyRepository) Create(ctx context.Context, survey *entity.Survey) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate survey id")
	}

	surveyM := fromSurveyDomain(survey)
	surveyM.ID = id
	surveyM.CreatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).Create(surveyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required survey information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create survey")
	}

	survey.ID = surveyM.ID
	survey.CreatedAt = surveyM.CreatedAt

	return nil
}

// FindByID retrieves a survey by id.
func (repo *surveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
	var surveyM model.SurveyModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&surveyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSurveyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find survey by id")
	}

	return toSurveyDomain(&surveyM), nil
}

// List returns every survey, newest first.
func (repo *surveyRepository) List(ctx context.Context) ([]*entity.Survey, error) {
	var surveyModels []*model.SurveyModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&surveyModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list surveys")
	}

	surveys := make([]*entity.Survey, 0, len(surveyModels))
	for _, surveyM := range surveyModels {
		surveys = append(surveys, toSurveyDomain(surveyM))
	}

	return surveys, nil
}

// Update replaces title, description and questions. Owner and creation time never change.
func (repo *surveyRepository) Update(ctx context.Context, survey *entity.Survey) error {
	questions := survey.Questions
	if questions == nil {
		questions = []string{}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SurveyModel{}).
		Where("id = ?", survey.ID).
		Select("title", "description", "questions").
		Updates(&model.SurveyModel{
			Title:       survey.Title,
			Description: survey.Description,
			Questions:   questions,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update survey")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSurveyNotFound
	}

	return nil
}

// Delete removes a survey. Deleting an absent survey returns ErrSurveyNotFound.
func (repo *surveyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SurveyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete survey")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSurveyNotFound
	}

	return nil
}

// responseRepository implements the domain.ResponseRepository interface using GORM.
type responseRepository struct {
	db *gorm.DB
}

// NewResponseRepository is the constructor for responseRepository.
func NewResponseRepository(db *gorm.DB) repository.ResponseRepository {
	return &responseRepository{db: db}
}

// Create persists a new response and fills its ID and CreatedAt.
func (repo *responseRepository) Create(ctx context.Context, response *entity.Response) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate response id")
	}

	responseM := fromResponseDomain(response)
	responseM.ID = id
	responseM.CreatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).Create(responseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create response")
	}

	response.ID = responseM.ID
	response.CreatedAt = responseM.CreatedAt

	return nil
}

// ListBySurveyID returns all responses for a survey, oldest first.
func (repo *responseRepository) ListBySurveyID(ctx context.Context, surveyID uuid.UUID) ([]*entity.Response, error) {
	var responseModels []*model.ResponseModel
	err := repo.db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&responseModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list responses")
	}

	responses := make([]*entity.Response, 0, len(responseModels))
	for _, responseM := range responseModels {
		responses = append(responses, toResponseDomain(responseM))
	}

	return responses, nil
}

// DeleteBySurveyID removes all responses for a survey and returns how many were removed.
func (repo *responseRepository) DeleteBySurveyID(ctx context.Context, surveyID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("survey_id = ?", surveyID).Delete(&model.ResponseModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete responses")
	}

	return result.RowsAffected, nil
}

// DeleteOrphaned removes responses whose survey no longer exists.
func (repo *responseRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	surveyIDs := repo.db.Model(&model.SurveyModel{}).Select("id")

	result := repo.db.WithContext(ctx).
		Where("survey_id NOT IN (?)", surveyIDs).
		Delete(&model.ResponseModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete orphaned responses")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toSurveyDomain(data *model.SurveyModel) *entity.Survey {
	if data == nil {
		return nil
	}

	questions := data.Questions
	if questions == nil {
		questions = []string{}
	}

	return &entity.Survey{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Questions:   questions,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromSurveyDomain(data *entity.Survey) *model.SurveyModel {
	questions := data.Questions
	if questions == nil {
		questions = []string{}
	}

	return &model.SurveyModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Questions:   questions,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
	}
}

func toResponseDomain(data *model.ResponseModel) *entity.Response {
	answers := make([]entity.Answer, 0, len(data.Answers))
	for _, a := range data.Answers {
		answers = append(answers, entity.Answer{
			QuestionIndex: a.QuestionIndex,
			Question:      a.Question,
			Text:          a.Text,
		})
	}

	return &entity.Response{
		ID:        data.ID,
		SurveyID:  data.SurveyID,
		UserID:    data.UserID,
		Answers:   answers,
		CreatedAt: data.CreatedAt,
	}
}

func fromResponseDomain(data *entity.Response) *model.ResponseModel {
	answers := make([]model.AnswerModel, 0, len(data.Answers))
	for _, a := range data.Answers {
		answers = append(answers, model.AnswerModel{
			QuestionIndex: a.QuestionIndex,
			Question:      a.Question,
			Text:          a.Text,
		})
	}

	return &model.ResponseModel{
		ID:        data.ID,
		SurveyID:  data.SurveyID,
		UserID:    data.UserID,
		Answers:   answers,
		CreatedAt: data.CreatedAt,
	}
}
