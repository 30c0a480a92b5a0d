package session

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"survey/config"
	"survey/internal/usecase"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(secret string) *Store {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return NewStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// roundTrip runs fn in a request carrying cookies and returns the cookies it set.
func roundTrip(t *testing.T, cookies []*http.Cookie, fn func(c echo.Context)) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	fn(echo.New().NewContext(req, rec))

	return rec.Result().Cookies()
}

func lastCookie(cookies []*http.Cookie, name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == name {
			found = c
		}
	}

	return found
}

func TestStore_SignInRoundTrip(t *testing.T) {
	store := newTestStore("0123456789abcdef0123456789abcdef")
	expires := time.Now().Add(time.Hour)

	set := roundTrip(t, nil, func(c echo.Context) {
		require.NoError(t, store.SignIn(c, &usecase.SignInOutput{
			SessionID:      "sid",
			Token:          "tok",
			TokenExpiresAt: expires,
		}))
	})

	sessionCookie := lastCookie(set, CookieName)
	require.NotNil(t, sessionCookie)
	assert.NotContains(t, sessionCookie.Value, "sid")
	tokenCookie := lastCookie(set, TokenCookieName)
	require.NotNil(t, tokenCookie)
	assert.True(t, tokenCookie.HttpOnly)

	roundTrip(t, []*http.Cookie{sessionCookie, tokenCookie}, func(c echo.Context) {
		assert.Equal(t, "sid", store.SessionID(c))
		assert.Equal(t, "tok", store.Token(c))
	})
}

func TestStore_TamperedCookieIsIgnored(t *testing.T) {
	store := newTestStore("0123456789abcdef0123456789abcdef")
	set := roundTrip(t, nil, func(c echo.Context) {
		require.NoError(t, store.SignIn(c, &usecase.SignInOutput{SessionID: "sid"}))
	})

	other := newTestStore("another-secret-another-secret-000")
	roundTrip(t, set, func(c echo.Context) {
		assert.Empty(t, other.SessionID(c))
	})
}

func TestStore_FlashesAreDrained(t *testing.T) {
	store := newTestStore("0123456789abcdef0123456789abcdef")

	set := roundTrip(t, nil, func(c echo.Context) {
		require.NoError(t, store.AddFlash(c, "Survey created"))
	})
	cookie := lastCookie(set, CookieName)

	set = roundTrip(t, []*http.Cookie{cookie}, func(c echo.Context) {
		assert.Equal(t, []string{"Survey created"}, store.Flashes(c))
	})

	roundTrip(t, []*http.Cookie{lastCookie(set, CookieName)}, func(c echo.Context) {
		assert.Empty(t, store.Flashes(c))
	})
}

func TestStore_SignOutKeepsFlashes(t *testing.T) {
	store := newTestStore("0123456789abcdef0123456789abcdef")

	set := roundTrip(t, nil, func(c echo.Context) {
		require.NoError(t, store.SignIn(c, &usecase.SignInOutput{SessionID: "sid"}))
	})
	set = roundTrip(t, []*http.Cookie{lastCookie(set, CookieName)}, func(c echo.Context) {
		require.NoError(t, store.AddFlash(c, "bye"))
		require.NoError(t, store.SignOut(c))
	})

	token := lastCookie(set, TokenCookieName)
	require.NotNil(t, token)
	assert.Negative(t, token.MaxAge)

	roundTrip(t, []*http.Cookie{lastCookie(set, CookieName)}, func(c echo.Context) {
		assert.Empty(t, store.SessionID(c))
		assert.Equal(t, []string{"bye"}, store.Flashes(c))
	})
}

func TestStore_OAuthStateIsSingleUse(t *testing.T) {
	store := newTestStore("0123456789abcdef0123456789abcdef")

	set := roundTrip(t, nil, func(c echo.Context) {
		require.NoError(t, store.SetOAuthState(c, "state-1"))
	})
	set = roundTrip(t, []*http.Cookie{lastCookie(set, CookieName)}, func(c echo.Context) {
		state, err := store.PopOAuthState(c)
		require.NoError(t, err)
		assert.Equal(t, "state-1", state)
	})
	roundTrip(t, []*http.Cookie{lastCookie(set, CookieName)}, func(c echo.Context) {
		state, err := store.PopOAuthState(c)
		require.NoError(t, err)
		assert.Empty(t, state)
	})
}

func TestStore_CookieLifetimeFollowsSessionTTL(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the signed timestamp to age")
	}

	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Second}}
	cfg.SecretKey.Session = "0123456789abcdef0123456789abcdef"
	store := NewStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	set := roundTrip(t, nil, func(c echo.Context) {
		require.NoError(t, store.SignIn(c, &usecase.SignInOutput{SessionID: "sid"}))
	})
	cookie := lastCookie(set, CookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, 1, cookie.MaxAge)

	// A client ignoring the cookie expiry replays it after the TTL.
	time.Sleep(2100 * time.Millisecond)

	roundTrip(t, []*http.Cookie{cookie}, func(c echo.Context) {
		assert.Empty(t, store.SessionID(c))
	})
}

// unsavableStore hands out a session holding one flash and refuses to save it.
type unsavableStore struct{}

func (u unsavableStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return u.New(r, name)
}

func (u unsavableStore) New(_ *http.Request, name string) (*sessions.Session, error) {
	sess := sessions.NewSession(u, name)
	sess.AddFlash("Survey created")

	return sess, nil
}

func (unsavableStore) Save(*http.Request, http.ResponseWriter, *sessions.Session) error {
	return errors.New("cookie too large")
}

func TestStore_FlashesLogsSaveFailure(t *testing.T) {
	var buf bytes.Buffer
	store := &Store{store: unsavableStore{}, logger: slog.New(slog.NewTextHandler(&buf, nil))}

	roundTrip(t, nil, func(c echo.Context) {
		assert.Equal(t, []string{"Survey created"}, store.Flashes(c))
	})

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "cookie too large")
}
