// Package session keeps the browser-side state of a sign-in: the server session id,
// flash messages and the pending OAuth state, in one signed and encrypted gorilla
// cookie, plus the separate bearer token cookie.
package session

import (
	"crypto/sha256"
	"log/slog"
	"net/http"
	"time"

	"survey/config"
	deliverycontext "survey/internal/delivery/context"
	"survey/internal/usecase"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// CookieName is the gorilla session cookie.
	CookieName = "survey_session"
	// TokenCookieName carries the bearer token.
	TokenCookieName = "jwt_token"

	keySessionID  = "sid"
	keyOAuthState = "oauth_state"
)

// Store reads and writes the session cookie of the current request.
type Store struct {
	store      sessions.Store
	secure     bool
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewStore builds the cookie store from secretKey.session. The same secret is
// stretched into the AES key so the cookie is both signed and encrypted.
func NewStore(cfg *config.Config, logger *slog.Logger) *Store {
	hashKey := []byte(cfg.SecretKey.Session)
	blockKey := sha256.Sum256(append([]byte("survey-session-encryption:"), hashKey...))

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	cookieStore := sessions.NewCookieStore(hashKey, blockKey[:])
	// MaxAge also bounds the signed timestamp the codecs accept, so an old cookie
	// replayed after its expiry no longer decodes.
	cookieStore.MaxAge(int(ttl.Seconds()))
	cookieStore.Options.Path = "/"
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.Secure = cfg.HTTP.CookieSecure
	cookieStore.Options.SameSite = http.SameSiteLaxMode

	return &Store{
		store:      cookieStore,
		secure:     cfg.HTTP.CookieSecure,
		sessionTTL: ttl,
		logger:     logger,
	}
}

// get returns the request's session. A cookie that fails to decode (rotated secret,
// tampering) yields a fresh empty session.
func (s *Store) get(c echo.Context) *sessions.Session {
	sess, err := s.store.Get(c.Request(), CookieName)
	if err != nil && sess == nil {
		sess = sessions.NewSession(s.store, CookieName)
	}

	return sess
}

func (s *Store) save(c echo.Context, sess *sessions.Session) error {
	return errors.Wrap(sess.Save(c.Request(), c.Response()), "failed to save session cookie")
}

// SessionID returns the raw server session id, or "" when signed out.
func (s *Store) SessionID(c echo.Context) string {
	id, _ := s.get(c).Values[keySessionID].(string)

	return id
}

// Token returns the bearer token cookie value, or "".
func (s *Store) Token(c echo.Context) string {
	cookie, err := c.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// SignIn stores the credentials of a successful sign-in in the client's cookies.
func (s *Store) SignIn(c echo.Context, out *usecase.SignInOutput) error {
	sess := s.get(c)
	sess.Values[keySessionID] = out.SessionID
	if err := s.save(c, sess); err != nil {
		return err
	}

	if out.Token != "" {
		maxAge := int(time.Until(out.TokenExpiresAt).Seconds())
		c.SetCookie(&http.Cookie{
			Name:     TokenCookieName,
			Value:    out.Token,
			Path:     "/",
			MaxAge:   maxAge,
			Expires:  out.TokenExpiresAt,
			HttpOnly: true,
			Secure:   s.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return nil
}

// SignOut forgets the session id and expires the token cookie. Flashes survive.
func (s *Store) SignOut(c echo.Context) error {
	sess := s.get(c)
	delete(sess.Values, keySessionID)
	delete(sess.Values, keyOAuthState)

	c.SetCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return s.save(c, sess)
}

// AddFlash queues a message for the next rendered page.
func (s *Store) AddFlash(c echo.Context, message string) error {
	sess := s.get(c)
	sess.AddFlash(message)

	return s.save(c, sess)
}

// Flashes drains the queued messages.
func (s *Store) Flashes(c echo.Context) []string {
	sess := s.get(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	// Draining must be persisted or the messages come back on the next page.
	if err := s.save(c, sess); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), s.logger).
			Warn("Failed to persist drained flashes", slog.Any("error", err))
	}

	return messages
}

// SetOAuthState remembers the state sent to the identity provider.
func (s *Store) SetOAuthState(c echo.Context, state string) error {
	sess := s.get(c)
	sess.Values[keyOAuthState] = state

	return s.save(c, sess)
}

// PopOAuthState returns and clears the pending state. Each state is usable once.
func (s *Store) PopOAuthState(c echo.Context) (string, error) {
	sess := s.get(c)
	state, _ := sess.Values[keyOAuthState].(string)
	delete(sess.Values, keyOAuthState)

	return state, s.save(c, sess)
}
