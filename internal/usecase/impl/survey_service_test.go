package impl

import (
	"context"
	"strings"
	"testing"

	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/repository"
	"survey/internal/domain/service"
	mockRepo "survey/internal/mocks/repository"
	mockSvc "survey/internal/mocks/service"
	"survey/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// surveyServiceFixtures holds all test dependencies for survey service tests.
type surveyServiceFixtures struct {
	service      usecase.SurveyUsecase
	txManager    *mockRepo.MockTransactionManager
	surveyRepo   *mockRepo.MockSurveyRepository
	responseRepo *mockRepo.MockResponseRepository
	publisher    *mockSvc.MockEventPublisher
	qrCode       *mockSvc.MockQRCodeService
}

func createTestSurveyService(t *testing.T) surveyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	surveyRepo := mockRepo.NewMockSurveyRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	svc := NewSurveyService(SurveyServiceParams{
		TxManager:    txManager,
		SurveyRepo:   surveyRepo,
		ResponseRepo: responseRepo,
		Publisher:    publisher,
		QRCode:       qrCode,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return surveyServiceFixtures{
		service:      svc,
		txManager:    txManager,
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		publisher:    publisher,
		qrCode:       qrCode,
	}
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e *service.SurveyEvent) bool {
		return e.Type == eventType
	})
}

func TestSurveyService_CreateSurvey(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.surveyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Survey")).
		Run(func(_ context.Context, survey *entity.Survey) {
			survey.ID = uuid.New()
		}).
		Return(nil)
	fx.publisher.EXPECT().PublishSurveyEvent(ctx, eventOfType(service.EventSurveyCreated)).Return(nil)

	survey, err := fx.service.CreateSurvey(ctx, usecase.CreateSurveyInput{
		OwnerID:   ownerID,
		Title:     " T ",
		Questions: []string{"Q1", "  ", "Q2 "},
	})

	require.NoError(t, err)
	assert.Equal(t, "T", survey.Title)
	assert.Equal(t, []string{"Q1", "Q2"}, survey.Questions)
	assert.Equal(t, ownerID, survey.OwnerID)
}

func TestSurveyService_CreateSurvey_ZeroQuestions(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()

	fx.surveyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Survey")).Return(nil)
	fx.publisher.EXPECT().PublishSurveyEvent(ctx, mock.Anything).Return(nil)

	survey, err := fx.service.CreateSurvey(ctx, usecase.CreateSurveyInput{OwnerID: uuid.New(), Title: "Empty"})

	require.NoError(t, err)
	assert.NotNil(t, survey.Questions)
	assert.Empty(t, survey.Questions)
}

func TestSurveyService_CreateSurvey_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()

	fx.surveyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Survey")).Return(nil)
	fx.publisher.EXPECT().PublishSurveyEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	_, err := fx.service.CreateSurvey(ctx, usecase.CreateSurveyInput{OwnerID: uuid.New(), Title: "T"})

	require.NoError(t, err)
}

func TestSurveyService_TitleRuleSharedByCreateAndEdit(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	tooLong := strings.Repeat("é", usecase.MaxSurveyTitleLength+1)
	longest := strings.Repeat("é", usecase.MaxSurveyTitleLength)

	t.Run("blank title is accepted on create", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Survey")).Return(nil)
		fx.publisher.EXPECT().PublishSurveyEvent(ctx, mock.Anything).Return(nil)

		survey, err := fx.service.CreateSurvey(ctx, usecase.CreateSurveyInput{OwnerID: ownerID, Title: "  "})

		require.NoError(t, err)
		assert.Empty(t, survey.Title)
	})

	t.Run("blank title is accepted on edit", func(t *testing.T) {
		fx := createTestSurveyService(t)
		surveyID := uuid.New()
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{ID: surveyID, Title: "T", OwnerID: ownerID}, nil)
		fx.surveyRepo.EXPECT().Update(ctx, mock.MatchedBy(func(s *entity.Survey) bool { return s.Title == "" })).Return(nil)

		_, err := fx.service.EditSurvey(ctx, usecase.EditSurveyInput{SurveyID: surveyID, RequesterID: ownerID})

		require.NoError(t, err)
	})

	t.Run("limit counts characters", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Survey")).Return(nil)
		fx.publisher.EXPECT().PublishSurveyEvent(ctx, mock.Anything).Return(nil)

		_, err := fx.service.CreateSurvey(ctx, usecase.CreateSurveyInput{OwnerID: ownerID, Title: longest})

		require.NoError(t, err)
	})

	t.Run("overlong title is rejected on both paths", func(t *testing.T) {
		fx := createTestSurveyService(t)

		_, createErr := fx.service.CreateSurvey(ctx, usecase.CreateSurveyInput{OwnerID: ownerID, Title: tooLong})
		_, editErr := fx.service.EditSurvey(ctx, usecase.EditSurveyInput{SurveyID: uuid.New(), RequesterID: ownerID, Title: tooLong})

		assert.True(t, errors.Is(createErr, domainerrors.ErrValidationFailed))
		assert.True(t, errors.Is(editErr, domainerrors.ErrValidationFailed))
	})
}

func TestSurveyService_EditSurvey(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	surveyID := uuid.New()

	stored := func() *entity.Survey {
		return &entity.Survey{ID: surveyID, Title: "T", Questions: []string{"Q1"}, OwnerID: ownerID}
	}

	t.Run("owner edits", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(stored(), nil)
		fx.surveyRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(s *entity.Survey) bool {
				return s.Description == "updated" && s.Title == "T2" && len(s.Questions) == 2
			})).
			Return(nil)

		survey, err := fx.service.EditSurvey(ctx, usecase.EditSurveyInput{
			SurveyID:    surveyID,
			RequesterID: ownerID,
			Title:       "T2",
			Description: "updated",
			Questions:   []string{"Q1", "Q2"},
		})

		require.NoError(t, err)
		assert.Equal(t, "updated", survey.Description)
		assert.Equal(t, ownerID, survey.OwnerID)
	})

	t.Run("absent and foreign fail the same way", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(stored(), nil)
		missingID := uuid.New()
		fx.surveyRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrSurveyNotFound)

		_, foreignErr := fx.service.EditSurvey(ctx, usecase.EditSurveyInput{SurveyID: surveyID, RequesterID: uuid.New()})
		_, missingErr := fx.service.EditSurvey(ctx, usecase.EditSurveyInput{SurveyID: missingID, RequesterID: ownerID})

		assert.ErrorIs(t, foreignErr, domainerrors.ErrNotFoundOrForbidden)
		assert.ErrorIs(t, missingErr, domainerrors.ErrNotFoundOrForbidden)
		assert.Equal(t, foreignErr.Error(), missingErr.Error())
	})

	t.Run("deleted before update", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(stored(), nil)
		fx.surveyRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrSurveyNotFound)

		_, err := fx.service.EditSurvey(ctx, usecase.EditSurveyInput{SurveyID: surveyID, RequesterID: ownerID})

		assert.ErrorIs(t, err, domainerrors.ErrNotFoundOrForbidden)
	})
}

func TestSurveyService_DeleteSurvey_Success(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	surveyID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSurveyRepo := mockRepo.NewMockSurveyRepository(t)
			mockResponseRepo := mockRepo.NewMockResponseRepository(t)

			mockFactory.EXPECT().NewSurveyRepository().Return(mockSurveyRepo)
			mockFactory.EXPECT().NewResponseRepository().Return(mockResponseRepo)

			mockSurveyRepo.EXPECT().
				FindByID(ctx, surveyID).
				Return(&entity.Survey{ID: surveyID, OwnerID: ownerID}, nil)
			responsesDeleted := mockResponseRepo.EXPECT().DeleteBySurveyID(ctx, surveyID).Return(3, nil)
			mockSurveyRepo.EXPECT().Delete(ctx, surveyID).Return(nil).NotBefore(responsesDeleted.Call)

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().
		PublishSurveyEvent(ctx, mock.MatchedBy(func(e *service.SurveyEvent) bool {
			return e.Type == service.EventSurveyDeleted && e.DeletedResponses == 3
		})).
		Return(nil)

	err := fx.service.DeleteSurvey(ctx, surveyID, ownerID)

	require.NoError(t, err)
}

func TestSurveyService_DeleteSurvey_Forbidden(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	surveyID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSurveyRepo := mockRepo.NewMockSurveyRepository(t)

			mockFactory.EXPECT().NewSurveyRepository().Return(mockSurveyRepo)
			mockSurveyRepo.EXPECT().
				FindByID(ctx, surveyID).
				Return(&entity.Survey{ID: surveyID, OwnerID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteSurvey(ctx, surveyID, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrNotFoundOrForbidden)
}

func TestSurveyService_SubmitResponse(t *testing.T) {
	ctx := context.Background()
	surveyID := uuid.New()
	respondentID := uuid.New()
	survey := &entity.Survey{ID: surveyID, Questions: []string{"Q1", "Q2"}, OwnerID: uuid.New()}

	t.Run("answers snapshot their questions", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(survey, nil)

		var stored *entity.Response
		fx.responseRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Response")).
			Run(func(_ context.Context, response *entity.Response) {
				response.ID = uuid.New()
				stored = response
			}).
			Return(nil)
		fx.publisher.EXPECT().PublishSurveyEvent(ctx, eventOfType(service.EventResponseSubmitted)).Return(nil)

		response, err := fx.service.SubmitResponse(ctx, usecase.SubmitResponseInput{
			SurveyID:     surveyID,
			RespondentID: respondentID,
			Answers:      []string{"yes", " no "},
		})

		require.NoError(t, err)
		assert.Same(t, stored, response)
		assert.Equal(t, respondentID, response.UserID)
		assert.Equal(t, []entity.Answer{
			{QuestionIndex: 0, Question: "Q1", Text: "yes"},
			{QuestionIndex: 1, Question: "Q2", Text: "no"},
		}, response.Answers)
	})

	t.Run("answer count must match", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(survey, nil)

		_, err := fx.service.SubmitResponse(ctx, usecase.SubmitResponseInput{
			SurveyID:     surveyID,
			RespondentID: respondentID,
			Answers:      []string{"only one"},
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown survey", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(nil, repository.ErrSurveyNotFound)

		_, err := fx.service.SubmitResponse(ctx, usecase.SubmitResponseInput{SurveyID: surveyID})

		assert.ErrorIs(t, err, domainerrors.ErrNotFoundOrForbidden)
	})
}

func TestSurveyService_ListResponses(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	surveyID := uuid.New()
	survey := &entity.Survey{ID: surveyID, OwnerID: ownerID}

	t.Run("owner", func(t *testing.T) {
		fx := createTestSurveyService(t)
		responses := []*entity.Response{{ID: uuid.New(), SurveyID: surveyID}}
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(survey, nil)
		fx.responseRepo.EXPECT().ListBySurveyID(ctx, surveyID).Return(responses, nil)

		got, err := fx.service.ListResponses(ctx, surveyID, ownerID)

		require.NoError(t, err)
		assert.Equal(t, responses, got)
	})

	t.Run("someone else", func(t *testing.T) {
		fx := createTestSurveyService(t)
		fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(survey, nil)

		_, err := fx.service.ListResponses(ctx, surveyID, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrNotFoundOrForbidden)
	})
}

func TestSurveyService_ShareQR(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	surveyID := uuid.New()

	fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{ID: surveyID}, nil)
	fx.qrCode.EXPECT().
		GenerateShareQR("https://survey.example/take_survey/"+surveyID.String()).
		Return([]byte("png"), nil)

	png, err := fx.service.ShareQR(ctx, surveyID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestSurveyService_ShareQR_UnknownSurvey(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	surveyID := uuid.New()

	fx.surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(nil, repository.ErrSurveyNotFound)

	_, err := fx.service.ShareQR(ctx, surveyID)

	assert.ErrorIs(t, err, repository.ErrSurveyNotFound)
}
