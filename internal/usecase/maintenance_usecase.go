package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SweepResult counts the rows one sweep removed.
type SweepResult struct {
	ExpiredSessions    int64
	ExpiredRevocations int64
	OrphanedResponses  int64
}

// MaintenanceUsecase removes state that has outlived its purpose.
type MaintenanceUsecase interface {
	// Sweep deletes expired sessions, expired revocation entries and responses whose
	// survey no longer exists.
	Sweep(ctx context.Context) (*SweepResult, error)

	// ReconcileSurvey deletes the responses of surveyID when the survey no longer
	// exists, returning how many were removed. Live surveys are left untouched.
	ReconcileSurvey(ctx context.Context, surveyID uuid.UUID) (int64, error)
}
