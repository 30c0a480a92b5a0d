// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"survey/config"
	"survey/internal/domain/entity"
	"survey/internal/domain/repository"
	"survey/internal/domain/service"
	"survey/internal/usecase"

	"github.com/pkg/errors"
)

const (
	fallbackSessionTTL = 24 * time.Hour
	sessionIDBytes     = 32
)

// credentialIssuer establishes the credentials handed to a client on sign-in.
type credentialIssuer struct {
	sessionRepo  repository.SessionRepository
	tokenService service.TokenService
	sessionTTL   time.Duration
	now          func() time.Time
}

func newCredentialIssuer(cfg *config.Config, sessionRepo repository.SessionRepository, tokenService service.TokenService) *credentialIssuer {
	ttl := fallbackSessionTTL
	if cfg != nil && cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &credentialIssuer{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		sessionTTL:   ttl,
		now:          time.Now,
	}
}

// openSession stores a new server session for user and fills the session fields of out.
func (ci *credentialIssuer) openSession(ctx context.Context, user *entity.User, out *usecase.SignInOutput) error {
	rawID, err := newSessionID()
	if err != nil {
		return err
	}

	session := &entity.Session{
		UserID:    user.ID,
		TokenHash: hashSessionID(rawID),
		ExpiresAt: ci.now().Add(ci.sessionTTL),
	}
	if err := ci.sessionRepo.Create(ctx, session); err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	out.User = user
	out.SessionID = rawID
	out.SessionExpiresAt = session.ExpiresAt

	return nil
}

// issueToken signs a bearer token for user and fills the token fields of out.
func (ci *credentialIssuer) issueToken(user *entity.User, out *usecase.SignInOutput) error {
	token, claims, err := ci.tokenService.Issue(user.Username)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	out.Token = token
	if claims.ExpiresAt != nil {
		out.TokenExpiresAt = claims.ExpiresAt.Time
	}

	return nil
}

func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session id")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// hashSessionID is the stored form of a raw session id.
func hashSessionID(rawID string) string {
	sum := sha256.Sum256([]byte(rawID))

	return hex.EncodeToString(sum[:])
}
