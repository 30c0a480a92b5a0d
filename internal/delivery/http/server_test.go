package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"survey/config"
	httpmiddleware "survey/internal/delivery/http/middleware"
	"survey/internal/delivery/http/router"
	"survey/internal/delivery/http/router/handler"
	"survey/internal/delivery/http/session"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/repository"
	mockUsecase "survey/internal/mocks/usecase"
	"survey/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	e        *echo.Echo
	auth     *mockUsecase.MockAuthUsecase
	identity *mockUsecase.MockIdentityUsecase
	surveys  *mockUsecase.MockSurveyUsecase
	alice    *entity.User
}

func createTestServer(t *testing.T) *serverFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Session = "session-secret-for-tests-0123456789"
	cfg.Metrics = &config.MetricsConfig{Enabled: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e, err := newEcho(cfg, logger)
	require.NoError(t, err)

	auth := mockUsecase.NewMockAuthUsecase(t)
	identity := mockUsecase.NewMockIdentityUsecase(t)
	surveys := mockUsecase.NewMockSurveyUsecase(t)
	identity.EXPECT().Enabled(entity.ProviderTypeGitHub).Return(true).Maybe()
	identity.EXPECT().Enabled(mock.Anything).Return(false).Maybe()

	sessions := session.NewStore(cfg, logger)
	router.NewRouter(router.RouterParams{
		Config: cfg,
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			Auth: auth, Identity: identity, Sessions: sessions, Logger: logger,
		}),
		OAuthHandler: handler.NewOAuthHandler(handler.OAuthHandlerParams{
			Identity: identity, Sessions: sessions, Logger: logger,
		}),
		SurveyHandler: handler.NewSurveyHandler(handler.SurveyHandlerParams{
			Surveys: surveys, Sessions: sessions, Logger: logger,
		}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(auth, sessions),
	}).RegisterRoutes(e)

	return &serverFixtures{
		e:        e,
		auth:     auth,
		identity: identity,
		surveys:  surveys,
		alice:    &entity.User{ID: uuid.New(), Username: "alice"},
	}
}

// browser keeps cookies between requests the way a user agent would.
type browser struct {
	fx      *serverFixtures
	cookies map[string]*http.Cookie
}

func (fx *serverFixtures) browser() *browser {
	return &browser{fx: fx, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.fx.e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)

			continue
		}
		b.cookies[c.Name] = c
	}

	return rec
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (b *browser) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return b.do(req)
}

func (b *browser) postJSON(target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return b.do(req)
}

// signIn logs alice in with both a session and a token.
func (b *browser) signIn(t *testing.T) {
	t.Helper()

	b.fx.auth.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: "pw1"}).
		Return(&usecase.SignInOutput{
			User:           b.fx.alice,
			SessionID:      "sid-alice",
			Token:          "token-alice",
			TokenExpiresAt: time.Now().Add(time.Hour),
		}, nil).
		Once()
	b.fx.auth.EXPECT().AuthorizeSession(mock.Anything, "sid-alice").Return(b.fx.alice, nil).Maybe()
	b.fx.auth.EXPECT().AuthorizeToken(mock.Anything, "token-alice").Return(b.fx.alice, nil).Maybe()

	rec := b.postForm("/login", url.Values{"username": {"alice"}, "password": {"pw1"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

// flashes renders the index and returns its body.
func (b *browser) index(t *testing.T) string {
	t.Helper()

	b.fx.surveys.EXPECT().ListSurveys(mock.Anything).Return(nil, nil).Once()
	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestServer_LoginSetsBothCookies(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()

	b.signIn(t)

	require.Contains(t, b.cookies, session.CookieName)
	require.Contains(t, b.cookies, session.TokenCookieName)
	token := b.cookies[session.TokenCookieName]
	assert.Equal(t, "token-alice", token.Value)
	assert.True(t, token.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, token.SameSite)
	assert.True(t, b.cookies[session.CookieName].HttpOnly)
	assert.Contains(t, b.index(t), "alice")
}

func TestServer_LoginFailureRedisplaysForm(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()

	fx.auth.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := b.postForm("/login", url.Values{"username": {"alice"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.Contains(t, rec.Body.String(), "/login/github")
	assert.NotContains(t, rec.Body.String(), "/login/yandex")
	assert.NotContains(t, b.cookies, session.TokenCookieName)
}

func TestServer_RegisterConflictFlashes(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()

	fx.auth.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Username: "alice", Password: "pw1"}).
		Return(nil, domainerrors.ErrConflict.WrapMessage("username exists"))

	rec := b.postForm("/register", url.Values{"username": {"alice"}, "password": {"pw1"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get(echo.HeaderLocation))

	page := b.get("/register")
	assert.Contains(t, page.Body.String(), "Username already taken")

	// Flashes are shown once.
	assert.NotContains(t, b.get("/register").Body.String(), "Username already taken")
}

func TestServer_RegisterSignsIn(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()

	fx.auth.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Username: "bob", Password: "pw2", Email: "bob@example.com"}).
		Return(&usecase.SignInOutput{User: &entity.User{ID: uuid.New(), Username: "bob"}, SessionID: "sid-bob"}, nil)

	rec := b.postForm("/register", url.Values{"username": {"bob"}, "password": {"pw2"}, "email": {"bob@example.com"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, b.cookies, session.CookieName)
	assert.NotContains(t, b.cookies, session.TokenCookieName)
}

func TestServer_GuardsRedirectToLogin(t *testing.T) {
	fx := createTestServer(t)
	id := uuid.NewString()

	anonymous := fx.browser()
	for _, target := range []string{"/edit_survey/" + id, "/take_survey/" + id, "/survey_results/" + id, "/create_survey", "/logout"} {
		rec := anonymous.get(target)
		assert.Equal(t, http.StatusFound, rec.Code, target)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), target)
	}

	// A session alone does not pass the token guard.
	fx.auth.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(&usecase.SignInOutput{User: fx.alice, SessionID: "sid-only"}, nil)
	fx.auth.EXPECT().AuthorizeSession(mock.Anything, "sid-only").Return(fx.alice, nil).Maybe()
	sessionOnly := fx.browser()
	sessionOnly.postForm("/register", url.Values{"username": {"alice"}, "password": {"pw1"}})

	rec := sessionOnly.get("/create_survey")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_RevokedTokenRedirects(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.cookies[session.TokenCookieName] = &http.Cookie{Name: session.TokenCookieName, Value: "revoked"}

	fx.auth.EXPECT().AuthorizeToken(mock.Anything, "revoked").Return(nil, domainerrors.ErrTokenInvalid)

	rec := b.get("/create_survey")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_CreateSurvey(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)

	fx.surveys.EXPECT().
		CreateSurvey(mock.Anything, usecase.CreateSurveyInput{
			OwnerID:   fx.alice.ID,
			Title:     "T",
			Questions: []string{"Q1", "Q2"},
		}).
		Return(&entity.Survey{ID: uuid.New(), Title: "T", OwnerID: fx.alice.ID}, nil)

	rec := b.postForm("/create_survey", url.Values{"title": {"T"}, "questions": {"Q1"}, "questions[]": {"Q2"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, b.index(t), "Survey created")
}

func TestServer_BlankTitleAcceptedOnCreateAndEdit(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)
	own := uuid.New()

	fx.surveys.EXPECT().
		CreateSurvey(mock.Anything, usecase.CreateSurveyInput{OwnerID: fx.alice.ID, Title: "", Questions: []string{"Q1"}}).
		Return(&entity.Survey{ID: own, OwnerID: fx.alice.ID}, nil)
	fx.surveys.EXPECT().
		EditSurvey(mock.Anything, usecase.EditSurveyInput{SurveyID: own, RequesterID: fx.alice.ID, Description: "d"}).
		Return(&entity.Survey{ID: own}, nil)

	rec := b.postForm("/create_survey", url.Values{"title": {""}, "questions": {"Q1"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = b.postJSON("/edit_survey/"+own.String(), `{"description":"d"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CreateSurveyTitleTooLong(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)

	fx.surveys.EXPECT().
		CreateSurvey(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WrapMessage("title too long"))

	rec := b.postForm("/create_survey", url.Values{"title": {strings.Repeat("x", usecase.MaxSurveyTitleLength+1)}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/create_survey", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_EditSurvey(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)
	own := uuid.New()
	foreign := uuid.New()

	fx.surveys.EXPECT().
		EditSurvey(mock.Anything, usecase.EditSurveyInput{
			SurveyID:    own,
			RequesterID: fx.alice.ID,
			Title:       "T",
			Description: "updated",
			Questions:   []string{"Q1", "Q2"},
		}).
		Return(&entity.Survey{ID: own}, nil)
	fx.surveys.EXPECT().
		EditSurvey(mock.Anything, mock.MatchedBy(func(in usecase.EditSurveyInput) bool { return in.SurveyID == foreign })).
		Return(nil, domainerrors.ErrNotFoundOrForbidden)

	rec := b.postJSON("/edit_survey/"+own.String(), `{"title":"T","description":"updated","questions":["Q1","Q2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	rec = b.postJSON("/edit_survey/"+own.String(), `{"title":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "INVALID_JSON", envelope.Error.Code)

	rec = b.postJSON("/edit_survey/"+own.String(), `{"title":"`+strings.Repeat("x", usecase.MaxSurveyTitleLength+1)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Title")

	rec = b.postJSON("/edit_survey/"+foreign.String(), `{"title":"hijacked"}`)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, b.index(t), "Survey not found or access denied")
}

func TestServer_ShowEditHidesForeignSurveys(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)
	foreign := &entity.Survey{ID: uuid.New(), Title: "Theirs", OwnerID: uuid.New()}
	missing := uuid.New()

	fx.surveys.EXPECT().GetSurvey(mock.Anything, foreign.ID).Return(foreign, nil)
	fx.surveys.EXPECT().GetSurvey(mock.Anything, missing).Return(nil, repository.ErrSurveyNotFound)

	foreignRec := b.get("/edit_survey/" + foreign.ID.String())
	foreignPage := b.index(t)
	missingRec := b.get("/edit_survey/" + missing.String())
	missingPage := b.index(t)

	assert.Equal(t, foreignRec.Code, missingRec.Code)
	assert.Equal(t, foreignRec.Header().Get(echo.HeaderLocation), missingRec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, foreignPage, "Survey not found or access denied")
	assert.Contains(t, missingPage, "Survey not found or access denied")
}

func TestServer_TakeSurvey(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)
	survey := &entity.Survey{ID: uuid.New(), Title: "T", Questions: []string{"Q1", "Q2"}, OwnerID: uuid.New()}

	fx.surveys.EXPECT().GetSurvey(mock.Anything, survey.ID).Return(survey, nil)
	page := b.get("/take_survey/" + survey.ID.String())
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "2. Q2")

	fx.surveys.EXPECT().
		SubmitResponse(mock.Anything, usecase.SubmitResponseInput{
			SurveyID:     survey.ID,
			RespondentID: fx.alice.ID,
			Answers:      []string{"a1", "a2"},
		}).
		Return(&entity.Response{ID: uuid.New()}, nil)

	rec := b.postForm("/take_survey/"+survey.ID.String(), url.Values{"answers": {"a1", "a2"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, b.index(t), "Response submitted")
}

func TestServer_TakeMissingSurvey(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)
	missing := uuid.New()

	fx.surveys.EXPECT().GetSurvey(mock.Anything, missing).Return(nil, repository.ErrSurveyNotFound)

	rec := b.get("/take_survey/" + missing.String())

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, b.index(t), "Survey not found")
}

func TestServer_Results(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)
	survey := &entity.Survey{ID: uuid.New(), Title: "T", Questions: []string{"Q1"}, OwnerID: fx.alice.ID}

	fx.surveys.EXPECT().GetSurvey(mock.Anything, survey.ID).Return(survey, nil)
	fx.surveys.EXPECT().
		ListResponses(mock.Anything, survey.ID, fx.alice.ID).
		Return([]*entity.Response{{
			ID:        uuid.New(),
			SurveyID:  survey.ID,
			Answers:   []entity.Answer{{QuestionIndex: 0, Question: "Q1", Text: "forty-two"}},
			CreatedAt: time.Now(),
		}}, nil)

	rec := b.get("/survey_results/" + survey.ID.String())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "forty-two")
}

func TestServer_DeleteSurvey(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)
	id := uuid.New()

	fx.surveys.EXPECT().DeleteSurvey(mock.Anything, id, fx.alice.ID).Return(nil)

	rec := b.postForm("/delete_survey/"+id.String(), nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, b.index(t), "Survey deleted successfully")
}

func TestServer_Logout(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	b.signIn(t)

	fx.auth.EXPECT().
		Logout(mock.Anything, usecase.LogoutInput{SessionID: "sid-alice", Token: "token-alice"}).
		Return(nil)

	rec := b.get("/logout")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.NotContains(t, b.cookies, session.TokenCookieName)

	// The session cookie survives but no longer names a session.
	rec = b.get("/edit_survey/" + uuid.NewString())
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_QRCode(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()
	known, missing := uuid.New(), uuid.New()

	fx.surveys.EXPECT().ShareQR(mock.Anything, known).Return([]byte("\x89PNG"), nil)
	fx.surveys.EXPECT().ShareQR(mock.Anything, missing).Return(nil, repository.ErrSurveyNotFound)

	rec := b.get("/survey/" + known.String() + "/qr")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	assert.Equal(t, http.StatusNotFound, b.get("/survey/"+missing.String()+"/qr").Code)
	assert.Equal(t, http.StatusNotFound, b.get("/survey/not-a-uuid/qr").Code)
}

func TestServer_OAuthFlow(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()

	assert.Equal(t, http.StatusNotFound, b.get("/login/yandex").Code)

	var state string
	fx.identity.EXPECT().
		BeginOAuth(mock.Anything, entity.ProviderTypeGitHub, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ entity.ProviderType, s string) (string, error) {
			state = s

			return "https://github.com/login/oauth/authorize?state=" + s, nil
		})

	rec := b.get("/login/github")
	require.Equal(t, http.StatusFound, rec.Code)
	require.NotEmpty(t, state)

	// A forged state is rejected and consumes the pending one.
	rec = b.get("/login/github/authorized?code=c&state=forged")
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, b.get("/login").Body.String(), "Failed to log in with GitHub.")

	rec = b.get("/login/github")
	require.Equal(t, http.StatusFound, rec.Code)

	fx.identity.EXPECT().
		CompleteOAuth(mock.Anything, entity.ProviderTypeGitHub, "c").
		Return(&usecase.SignInOutput{User: fx.alice, SessionID: "sid-alice"}, nil)
	fx.auth.EXPECT().AuthorizeSession(mock.Anything, "sid-alice").Return(fx.alice, nil).Maybe()

	rec = b.get("/login/github/authorized?code=c&state=" + url.QueryEscape(state))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, b.index(t), "Successfully signed in with GitHub.")
}

func TestServer_OAuthProfileFailure(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()

	var state string
	fx.identity.EXPECT().
		BeginOAuth(mock.Anything, entity.ProviderTypeGitHub, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ entity.ProviderType, s string) (string, error) {
			state = s

			return "https://github.com/login/oauth/authorize", nil
		})
	fx.identity.EXPECT().
		CompleteOAuth(mock.Anything, entity.ProviderTypeGitHub, "c").
		Return(nil, domainerrors.ErrUpstreamProfileFailure.WrapMessage("status 500"))

	b.get("/login/github")
	rec := b.get("/login/github/authorized?code=c&state=" + url.QueryEscape(state))

	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, b.get("/login").Body.String(), "Failed to fetch user info from GitHub.")
	assert.NotContains(t, b.cookies, session.TokenCookieName)
}

func TestServer_StoreFailureIsInternalError(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()

	fx.surveys.EXPECT().
		ListSurveys(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "list surveys"))

	rec := b.get("/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestServer_HealthAndMetrics(t *testing.T) {
	fx := createTestServer(t)
	b := fx.browser()

	rec := b.get("/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = b.get("/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "survey_http_requests_total")
}
