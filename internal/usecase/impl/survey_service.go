package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"survey/config"
	deliverycontext "survey/internal/delivery/context"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/repository"
	"survey/internal/domain/service"
	"survey/internal/infra/metrics"
	"survey/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// surveyService implements the SurveyUsecase interface.
type surveyService struct {
	txManager    repository.TransactionManager
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
	publisher    service.EventPublisher
	qrCode       service.QRCodeService
	publicURL    func(path string) string
	logger       *slog.Logger
}

// SurveyServiceParams holds dependencies for SurveyService, injected by Fx.
type SurveyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SurveyRepo   repository.SurveyRepository
	ResponseRepo repository.ResponseRepository
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSurveyService is the constructor for surveyService.
func NewSurveyService(params SurveyServiceParams) usecase.SurveyUsecase {
	return &surveyService{
		txManager:    params.TxManager,
		surveyRepo:   params.SurveyRepo,
		responseRepo: params.ResponseRepo,
		publisher:    params.Publisher,
		qrCode:       params.QRCode,
		publicURL:    params.Config.PublicURL,
		logger:       params.Logger,
	}
}

func (srv *surveyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSurvey stores a survey owned by input.OwnerID. Any number of questions,
// including none, is accepted.
func (srv *surveyService) CreateSurvey(ctx context.Context, input usecase.CreateSurveyInput) (*entity.Survey, error) {
	if input.OwnerID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("survey owner is required")
	}
	title, err := surveyTitle(input.Title)
	if err != nil {
		return nil, err
	}

	survey := &entity.Survey{
		Title:     title,
		Questions: cleanQuestions(input.Questions),
		OwnerID:   input.OwnerID,
	}
	if err := srv.surveyRepo.Create(ctx, survey); err != nil {
		return nil, errors.Wrap(err, "failed to create survey")
	}

	metrics.SurveyCreated()
	srv.publish(ctx, &service.SurveyEvent{
		Type:     service.EventSurveyCreated,
		SurveyID: survey.ID.String(),
		UserID:   survey.OwnerID.String(),
	})

	srv.log(ctx).Info("Survey created",
		slog.String("survey_id", survey.ID.String()),
		slog.Int("questions", len(survey.Questions)),
	)

	return survey, nil
}

// GetSurvey returns the survey or repository.ErrSurveyNotFound.
func (srv *surveyService) GetSurvey(ctx context.Context, surveyID uuid.UUID) (*entity.Survey, error) {
	survey, err := srv.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, repository.ErrSurveyNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find survey")
	}

	return survey, nil
}

// ListSurveys returns every survey, newest first.
func (srv *surveyService) ListSurveys(ctx context.Context) ([]*entity.Survey, error) {
	surveys, err := srv.surveyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list surveys")
	}

	return surveys, nil
}

// EditSurvey replaces title, description and questions of a survey the requester owns.
func (srv *surveyService) EditSurvey(ctx context.Context, input usecase.EditSurveyInput) (*entity.Survey, error) {
	title, err := surveyTitle(input.Title)
	if err != nil {
		return nil, err
	}

	survey, err := srv.ownedSurvey(ctx, srv.surveyRepo, input.SurveyID, input.RequesterID)
	if err != nil {
		return nil, err
	}

	survey.Title = title
	survey.Description = input.Description
	survey.Questions = cleanQuestions(input.Questions)

	if err := srv.surveyRepo.Update(ctx, survey); err != nil {
		// Deleted between the ownership check and the write.
		if errors.Is(err, repository.ErrSurveyNotFound) {
			return nil, domainerrors.ErrNotFoundOrForbidden
		}

		return nil, errors.Wrap(err, "failed to update survey")
	}

	srv.log(ctx).Info("Survey edited", slog.String("survey_id", survey.ID.String()))

	return survey, nil
}

// DeleteSurvey removes a survey the requester owns together with its responses.
// Responses go first, so an interrupted cascade can only leave orphans for the sweeper.
func (srv *surveyService) DeleteSurvey(ctx context.Context, surveyID, requesterID uuid.UUID) error {
	var deleted int64

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		surveyRepo := factory.NewSurveyRepository()
		if _, err := srv.ownedSurvey(ctx, surveyRepo, surveyID, requesterID); err != nil {
			return err
		}

		n, err := factory.NewResponseRepository().DeleteBySurveyID(ctx, surveyID)
		if err != nil {
			return errors.Wrap(err, "failed to delete survey responses")
		}
		deleted = n

		if err := surveyRepo.Delete(ctx, surveyID); err != nil {
			if errors.Is(err, repository.ErrSurveyNotFound) {
				return domainerrors.ErrNotFoundOrForbidden
			}

			return errors.Wrap(err, "failed to delete survey")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, &service.SurveyEvent{
		Type:             service.EventSurveyDeleted,
		SurveyID:         surveyID.String(),
		UserID:           requesterID.String(),
		DeletedResponses: deleted,
	})

	srv.log(ctx).Info("Survey deleted",
		slog.String("survey_id", surveyID.String()),
		slog.Int64("responses", deleted),
	)

	return nil
}

// SubmitResponse records one answer per question. The answer count must match the
// survey's current question count.
func (srv *surveyService) SubmitResponse(ctx context.Context, input usecase.SubmitResponseInput) (*entity.Response, error) {
	survey, err := srv.surveyRepo.FindByID(ctx, input.SurveyID)
	if err != nil {
		if errors.Is(err, repository.ErrSurveyNotFound) {
			return nil, domainerrors.ErrNotFoundOrForbidden
		}

		return nil, errors.Wrap(err, "failed to find survey")
	}

	if len(input.Answers) != len(survey.Questions) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("answer count does not match question count")
	}

	answers := make([]entity.Answer, len(survey.Questions))
	for i, question := range survey.Questions {
		answers[i] = entity.Answer{
			QuestionIndex: i,
			Question:      question,
			Text:          strings.TrimSpace(input.Answers[i]),
		}
	}

	response := &entity.Response{
		SurveyID: survey.ID,
		UserID:   input.RespondentID,
		Answers:  answers,
	}
	if err := srv.responseRepo.Create(ctx, response); err != nil {
		return nil, errors.Wrap(err, "failed to create response")
	}

	metrics.ResponseSubmitted()
	srv.publish(ctx, &service.SurveyEvent{
		Type:       service.EventResponseSubmitted,
		SurveyID:   survey.ID.String(),
		UserID:     input.RespondentID.String(),
		ResponseID: response.ID.String(),
	})

	return response, nil
}

// ListResponses returns the responses of a survey the requester owns.
func (srv *surveyService) ListResponses(ctx context.Context, surveyID, requesterID uuid.UUID) ([]*entity.Response, error) {
	if _, err := srv.ownedSurvey(ctx, srv.surveyRepo, surveyID, requesterID); err != nil {
		return nil, err
	}

	responses, err := srv.responseRepo.ListBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list responses")
	}

	return responses, nil
}

// ShareQR renders the take-survey link of an existing survey.
func (srv *surveyService) ShareQR(ctx context.Context, surveyID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetSurvey(ctx, surveyID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateShareQR(srv.publicURL("/take_survey/" + surveyID.String()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

// ownedSurvey loads a survey for mutation. Absent and foreign surveys fail the same way.
func (srv *surveyService) ownedSurvey(ctx context.Context, repo repository.SurveyRepository, surveyID, requesterID uuid.UUID) (*entity.Survey, error) {
	survey, err := repo.FindByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, repository.ErrSurveyNotFound) {
			return nil, domainerrors.ErrNotFoundOrForbidden
		}

		return nil, errors.Wrap(err, "failed to find survey")
	}

	if !survey.IsOwnedBy(requesterID) {
		srv.log(ctx).Info("Survey access denied",
			slog.String("survey_id", surveyID.String()),
			slog.String("requester_id", requesterID.String()),
		)

		return nil, domainerrors.ErrNotFoundOrForbidden
	}

	return survey, nil
}

// publish sends event after the change is committed. Failures are only logged.
func (srv *surveyService) publish(ctx context.Context, event *service.SurveyEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := srv.publisher.PublishSurveyEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish survey event",
			slog.String("type", event.Type),
			slog.String("survey_id", event.SurveyID),
			slog.Any("error", err),
		)
	}
}

// surveyTitle applies the one title rule shared by create and edit: trimmed,
// may be blank, at most MaxSurveyTitleLength characters.
func surveyTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if utf8.RuneCountInString(title) > usecase.MaxSurveyTitleLength {
		return "", domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("title must be at most %d characters", usecase.MaxSurveyTitleLength))
	}

	return title, nil
}

// cleanQuestions trims prompts and drops blank ones. The result is never nil.
func cleanQuestions(questions []string) []string {
	cleaned := make([]string, 0, len(questions))
	for _, q := range questions {
		if q = strings.TrimSpace(q); q != "" {
			cleaned = append(cleaned, q)
		}
	}

	return cleaned
}
