package impl

import (
	"context"
	"log/slog"
	"time"

	"survey/internal/domain/repository"
	"survey/internal/infra/metrics"
	"survey/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Sweeper metric kinds.
const (
	sweepKindSessions    = "sessions"
	sweepKindRevocations = "revocations"
	sweepKindResponses   = "responses"
)

type maintenanceService struct {
	surveyRepo     repository.SurveyRepository
	sessionRepo    repository.SessionRepository
	revocationRepo repository.RevocationRepository
	responseRepo   repository.ResponseRepository
	now            func() time.Time
	logger         *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	SurveyRepo     repository.SurveyRepository
	SessionRepo    repository.SessionRepository
	RevocationRepo repository.RevocationRepository
	ResponseRepo   repository.ResponseRepository
	Logger         *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		surveyRepo:     params.SurveyRepo,
		sessionRepo:    params.SessionRepo,
		revocationRepo: params.RevocationRepo,
		responseRepo:   params.ResponseRepo,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// Sweep runs every cleanup step. A failing step stops the sweep; the next tick retries.
func (srv *maintenanceService) Sweep(ctx context.Context) (*usecase.SweepResult, error) {
	now := srv.now()
	result := &usecase.SweepResult{}

	sessions, err := srv.sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		return result, errors.Wrap(err, "failed to delete expired sessions")
	}
	result.ExpiredSessions = sessions
	metrics.SweeperDeleted(sweepKindSessions, sessions)

	revocations, err := srv.revocationRepo.DeleteExpired(ctx, now)
	if err != nil {
		return result, errors.Wrap(err, "failed to delete expired revocations")
	}
	result.ExpiredRevocations = revocations
	metrics.SweeperDeleted(sweepKindRevocations, revocations)

	orphans, err := srv.responseRepo.DeleteOrphaned(ctx)
	if err != nil {
		return result, errors.Wrap(err, "failed to delete orphaned responses")
	}
	result.OrphanedResponses = orphans
	metrics.SweeperDeleted(sweepKindResponses, orphans)

	if orphans > 0 {
		srv.logger.Warn("Removed responses of deleted surveys", slog.Int64("count", orphans))
	}
	srv.logger.Debug("Sweep finished",
		slog.Int64("sessions", sessions),
		slog.Int64("revocations", revocations),
		slog.Int64("responses", orphans),
	)

	return result, nil
}

// ReconcileSurvey finishes a cascade that a concurrent submit outran.
func (srv *maintenanceService) ReconcileSurvey(ctx context.Context, surveyID uuid.UUID) (int64, error) {
	_, err := srv.surveyRepo.FindByID(ctx, surveyID)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, repository.ErrSurveyNotFound) {
		return 0, errors.Wrap(err, "failed to look up survey")
	}

	deleted, err := srv.responseRepo.DeleteBySurveyID(ctx, surveyID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete responses of deleted survey")
	}
	metrics.SweeperDeleted(sweepKindResponses, deleted)

	if deleted > 0 {
		srv.logger.WarnContext(ctx, "Removed responses of deleted survey",
			slog.String("survey_id", surveyID.String()),
			slog.Int64("count", deleted),
		)
	}

	return deleted, nil
}
