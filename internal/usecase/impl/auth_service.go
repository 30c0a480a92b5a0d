package impl

import (
	"context"
	"log/slog"
	"strings"

	"survey/config"
	deliverycontext "survey/internal/delivery/context"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/repository"
	"survey/internal/domain/service"
	"survey/internal/infra/metrics"
	"survey/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword is hashed at construction and checked against on every failed
// lookup, so an unknown username costs the same bcrypt comparison as a wrong password.
const dummyPassword = "survey-timing-equalizer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	revocationRepo repository.RevocationRepository
	sessionRepo    repository.SessionRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	issuer         *credentialIssuer
	logger         *slog.Logger
	dummyHash      string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	SessionRepo    repository.SessionRepository
	RevocationRepo repository.RevocationRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It fails when the hasher
// cannot produce the timing hash, which means its cost setting is unusable.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	dummyHash, err := params.Hasher.Hash(dummyPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare timing hash")
	}

	return &authService{
		userRepo:       params.UserRepo,
		revocationRepo: params.RevocationRepo,
		sessionRepo:    params.SessionRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		issuer:         newCredentialIssuer(params.Config, params.SessionRepo, params.TokenService),
		logger:         params.Logger,
		dummyHash:      dummyHash,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account and signs it in. The new account gets a server
// session only; a bearer token is issued at the next login.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SignInOutput, error) {
	username := normalizeUsername(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.CreateLocal(ctx, username, hash, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", username))

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create local user")
	}

	out := &usecase.SignInOutput{}
	if err := srv.issuer.openSession(ctx, user, out); err != nil {
		return nil, err
	}

	metrics.SignIn(metrics.SignInLocal)
	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return out, nil
}

// Login verifies the credential, opens a server session and issues a bearer token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SignInOutput, error) {
	user, err := srv.VerifyCredential(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	out := &usecase.SignInOutput{}
	if err := srv.issuer.openSession(ctx, user, out); err != nil {
		return nil, err
	}
	if err := srv.issuer.issueToken(user, out); err != nil {
		return nil, err
	}

	metrics.SignIn(metrics.SignInLocal)
	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()))

	return out, nil
}

// Logout ends the server session and puts the bearer token on the revocation list
// until it would have expired.
func (srv *authService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	if input.SessionID != "" {
		if err := srv.sessionRepo.DeleteByHash(ctx, hashSessionID(input.SessionID)); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}
	}

	if input.Token == "" {
		return nil
	}

	claims, err := srv.tokenService.Parse(input.Token)
	if err != nil {
		// Expired or forged tokens grant nothing and need no entry.
		srv.log(ctx).Debug("Logout with unusable token", slog.Any("error", err))

		return nil
	}

	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	revoked := &entity.RevokedToken{JTI: claims.ID, ExpiresAt: claims.ExpiresAt.Time}
	if err := srv.revocationRepo.Revoke(ctx, revoked); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	srv.log(ctx).Debug("Bearer token revoked", slog.String("jti", claims.ID))

	return nil
}

// VerifyCredential looks the user up and compares the password in constant time.
func (srv *authService) VerifyCredential(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, normalizeUsername(username))
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by username")
		}
		srv.hasher.Check(password, srv.dummyHash)

		return nil, domainerrors.ErrInvalidCredentials
	}

	hash, ok := user.PasswordHash()
	if !ok {
		srv.hasher.Check(password, srv.dummyHash)

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(password, hash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// normalizeUsername is applied on both sign-up and sign-in so surrounding
// whitespace never splits one account into two names.
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// AuthorizeSession resolves a raw session id to its user.
func (srv *authService) AuthorizeSession(ctx context.Context, sessionID string) (*entity.User, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	session, err := srv.sessionRepo.FindByHash(ctx, hashSessionID(sessionID))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find session user")
	}

	return user, nil
}

// AuthorizeToken resolves a bearer token to its user. Revoked tokens are rejected.
func (srv *authService) AuthorizeToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims, err := srv.tokenService.Parse(token)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	revoked, err := srv.revocationRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		srv.log(ctx).Debug("Revoked bearer token presented", slog.String("jti", claims.ID))

		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find token user")
	}

	return user, nil
}
