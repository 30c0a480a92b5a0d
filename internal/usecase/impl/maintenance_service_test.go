package impl

import (
	"context"
	"testing"
	"time"

	"survey/internal/domain/entity"
	"survey/internal/domain/repository"
	mockRepo "survey/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_Sweep(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	revocationRepo := mockRepo.NewMockRevocationRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	svc := NewMaintenanceService(MaintenanceServiceParams{
		SessionRepo:    sessionRepo,
		RevocationRepo: revocationRepo,
		ResponseRepo:   responseRepo,
		Logger:         newDiscardLogger(),
	}).(*maintenanceService)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	sessionRepo.EXPECT().DeleteExpired(ctx, now).Return(4, nil)
	revocationRepo.EXPECT().DeleteExpired(ctx, now).Return(2, nil)
	responseRepo.EXPECT().DeleteOrphaned(ctx).Return(1, nil)

	result, err := svc.Sweep(ctx)

	require.NoError(t, err)
	assert.EqualValues(t, 4, result.ExpiredSessions)
	assert.EqualValues(t, 2, result.ExpiredRevocations)
	assert.EqualValues(t, 1, result.OrphanedResponses)
}

func TestMaintenanceService_Sweep_StopsOnFailure(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	revocationRepo := mockRepo.NewMockRevocationRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)

	svc := NewMaintenanceService(MaintenanceServiceParams{
		SessionRepo:    sessionRepo,
		RevocationRepo: revocationRepo,
		ResponseRepo:   responseRepo,
		Logger:         newDiscardLogger(),
	})

	sessionRepo.EXPECT().DeleteExpired(context.Background(), mock.AnythingOfType("time.Time")).Return(0, errors.New("db down"))

	result, err := svc.Sweep(context.Background())

	require.Error(t, err)
	assert.Zero(t, result.ExpiredSessions)
}

func TestMaintenanceService_ReconcileSurvey(t *testing.T) {
	surveyID := uuid.New()
	ctx := context.Background()

	cases := []struct {
		name    string
		setup   func(surveyRepo *mockRepo.MockSurveyRepository, responseRepo *mockRepo.MockResponseRepository)
		deleted int64
		wantErr bool
	}{
		{
			name: "live survey keeps its responses",
			setup: func(surveyRepo *mockRepo.MockSurveyRepository, _ *mockRepo.MockResponseRepository) {
				surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{ID: surveyID}, nil)
			},
		},
		{
			name: "deleted survey loses its responses",
			setup: func(surveyRepo *mockRepo.MockSurveyRepository, responseRepo *mockRepo.MockResponseRepository) {
				surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(nil, repository.ErrSurveyNotFound)
				responseRepo.EXPECT().DeleteBySurveyID(ctx, surveyID).Return(3, nil)
			},
			deleted: 3,
		},
		{
			name: "lookup failure is not treated as deletion",
			setup: func(surveyRepo *mockRepo.MockSurveyRepository, _ *mockRepo.MockResponseRepository) {
				surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			surveyRepo := mockRepo.NewMockSurveyRepository(t)
			responseRepo := mockRepo.NewMockResponseRepository(t)
			tc.setup(surveyRepo, responseRepo)

			svc := NewMaintenanceService(MaintenanceServiceParams{
				SurveyRepo:   surveyRepo,
				ResponseRepo: responseRepo,
				Logger:       newDiscardLogger(),
			})

			deleted, err := svc.ReconcileSurvey(ctx, surveyID)

			if tc.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.deleted, deleted)
		})
	}
}
