package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "survey/internal/delivery/context"
	"survey/internal/delivery/http/response"
	"survey/internal/delivery/http/session"
	"survey/internal/delivery/http/validator"
	"survey/internal/delivery/http/view"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/repository"
	"survey/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	flashSurveyCreated     = "Survey created"
	flashSurveyDeleted     = "Survey deleted successfully"
	flashSurveyNotFound    = "Survey not found"
	flashResponseSubmitted = "Response submitted"
	flashAnswerEvery       = "Please answer every question"
	flashTitleTooLong      = "Title must be at most 255 characters"
)

type editSurveyRequest struct {
	Title       string   `json:"title" validate:"max=255"`
	Description string   `json:"description" validate:"max=2000"`
	Questions   []string `json:"questions" validate:"max=100,dive,max=500"`
}

type surveyResults struct {
	Survey    *entity.Survey
	Responses []*entity.Response
}

// SurveyHandler serves survey CRUD, response entry and sharing.
type SurveyHandler struct {
	pages
	surveys usecase.SurveyUsecase
	logger  *slog.Logger
}

// SurveyHandlerParams holds dependencies for SurveyHandler, injected by Fx.
type SurveyHandlerParams struct {
	fx.In

	Surveys  usecase.SurveyUsecase
	Sessions *session.Store
	Logger   *slog.Logger
}

// NewSurveyHandler is the constructor for SurveyHandler, injected by Fx.
func NewSurveyHandler(params SurveyHandlerParams) *SurveyHandler {
	return &SurveyHandler{
		pages:   pages{sessions: params.Sessions},
		surveys: params.Surveys,
		logger:  params.Logger,
	}
}

// surveyID parses the {id} path parameter. Malformed ids behave like missing surveys.
func surveyID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

func (h *SurveyHandler) deniedOrFail(c echo.Context, err error) error {
	if errors.Is(err, domainerrors.ErrNotFoundOrForbidden) {
		return h.redirectWithFlash(c, "/", domainerrors.ErrNotFoundOrForbidden.Message())
	}

	return errors.WithStack(err)
}

// Index lists every survey.
func (h *SurveyHandler) Index(c echo.Context) error {
	surveys, err := h.surveys.ListSurveys(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, http.StatusOK, view.PageIndex, surveys)
}

// ShowCreate renders the new-survey form.
func (h *SurveyHandler) ShowCreate(c echo.Context) error {
	return h.render(c, http.StatusOK, view.PageCreateSurvey, nil)
}

// Create stores a survey owned by the token's user. Questions come from the repeated
// form field `questions`, or `questions[]` as older forms send it.
func (h *SurveyHandler) Create(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.ErrBadRequest
	}
	questions := append(params["questions"], params["questions[]"]...)

	survey, err := h.surveys.CreateSurvey(c.Request().Context(), usecase.CreateSurveyInput{
		OwnerID:   deliverycontext.GetUser(c).ID,
		Title:     params.Get("title"),
		Questions: questions,
	})
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return h.redirectWithFlash(c, "/create_survey", flashTitleTooLong)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Survey created", slog.String("survey_id", survey.ID.String()))

	return h.redirectWithFlash(c, "/", flashSurveyCreated)
}

// ShowEdit renders the edit form for the owner.
func (h *SurveyHandler) ShowEdit(c echo.Context) error {
	survey, err := h.ownedSurvey(c)
	if err != nil {
		return h.deniedOrFail(c, err)
	}

	return h.render(c, http.StatusOK, view.PageEditSurvey, survey)
}

// Edit replaces title, description and questions from a JSON body.
func (h *SurveyHandler) Edit(c echo.Context) error {
	id, ok := surveyID(c)
	if !ok {
		return h.deniedOrFail(c, domainerrors.ErrNotFoundOrForbidden)
	}

	var req editSurveyRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return response.BadRequest(c, "INVALID_JSON", "Malformed JSON body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	_, err := h.surveys.EditSurvey(c.Request().Context(), usecase.EditSurveyInput{
		SurveyID:    id,
		RequesterID: deliverycontext.GetUser(c).ID,
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
	})
	if errors.Is(err, domainerrors.ErrNotFoundOrForbidden) {
		return h.deniedOrFail(c, err)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// ShowTake renders the response form.
func (h *SurveyHandler) ShowTake(c echo.Context) error {
	id, ok := surveyID(c)
	if !ok {
		return h.redirectWithFlash(c, "/", flashSurveyNotFound)
	}

	survey, err := h.surveys.GetSurvey(c.Request().Context(), id)
	if errors.Is(err, repository.ErrSurveyNotFound) {
		return h.redirectWithFlash(c, "/", flashSurveyNotFound)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, http.StatusOK, view.PageTakeSurvey, survey)
}

// Take records one answer per question from the repeated form field `answers`.
func (h *SurveyHandler) Take(c echo.Context) error {
	id, ok := surveyID(c)
	if !ok {
		return h.redirectWithFlash(c, "/", flashSurveyNotFound)
	}

	params, err := c.FormParams()
	if err != nil {
		return h.redirectWithFlash(c, "/take_survey/"+id.String(), flashAnswerEvery)
	}

	_, err = h.surveys.SubmitResponse(c.Request().Context(), usecase.SubmitResponseInput{
		SurveyID:     id,
		RespondentID: deliverycontext.GetUser(c).ID,
		Answers:      params["answers"],
	})
	switch {
	case errors.Is(err, domainerrors.ErrNotFoundOrForbidden):
		return h.redirectWithFlash(c, "/", flashSurveyNotFound)
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return h.redirectWithFlash(c, "/take_survey/"+id.String(), flashAnswerEvery)
	case err != nil:
		return errors.WithStack(err)
	}

	return h.redirectWithFlash(c, "/", flashResponseSubmitted)
}

// Results lists the responses of an owned survey.
func (h *SurveyHandler) Results(c echo.Context) error {
	survey, err := h.ownedSurvey(c)
	if err != nil {
		return h.deniedOrFail(c, err)
	}

	responses, err := h.surveys.ListResponses(c.Request().Context(), survey.ID, deliverycontext.GetUser(c).ID)
	if err != nil {
		return h.deniedOrFail(c, err)
	}

	return h.render(c, http.StatusOK, view.PageSurveyResults, surveyResults{Survey: survey, Responses: responses})
}

// Delete removes an owned survey and its responses.
func (h *SurveyHandler) Delete(c echo.Context) error {
	id, ok := surveyID(c)
	if !ok {
		return h.deniedOrFail(c, domainerrors.ErrNotFoundOrForbidden)
	}

	if err := h.surveys.DeleteSurvey(c.Request().Context(), id, deliverycontext.GetUser(c).ID); err != nil {
		return h.deniedOrFail(c, err)
	}

	return h.redirectWithFlash(c, "/", flashSurveyDeleted)
}

// QR serves the take-survey link as a PNG.
func (h *SurveyHandler) QR(c echo.Context) error {
	id, ok := surveyID(c)
	if !ok {
		return echo.ErrNotFound
	}

	png, err := h.surveys.ShareQR(c.Request().Context(), id)
	if errors.Is(err, repository.ErrSurveyNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ownedSurvey loads the {id} survey when the guarded user owns it. Every other case
// is ErrNotFoundOrForbidden.
func (h *SurveyHandler) ownedSurvey(c echo.Context) (*entity.Survey, error) {
	id, ok := surveyID(c)
	if !ok {
		return nil, domainerrors.ErrNotFoundOrForbidden
	}

	survey, err := h.surveys.GetSurvey(c.Request().Context(), id)
	if errors.Is(err, repository.ErrSurveyNotFound) {
		return nil, domainerrors.ErrNotFoundOrForbidden
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !survey.IsOwnedBy(deliverycontext.GetUser(c).ID) {
		return nil, domainerrors.ErrNotFoundOrForbidden
	}

	return survey, nil
}
