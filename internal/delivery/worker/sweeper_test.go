package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"survey/internal/usecase"
	mockUsecase "survey/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSweeper(maintenance usecase.MaintenanceUsecase) *sweeper {
	return &sweeper{
		interval:    5 * time.Millisecond,
		maintenance: maintenance,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

func TestSweeper_TicksUntilStopped(t *testing.T) {
	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)
	swept := make(chan struct{}, 8)
	maintenance.EXPECT().Sweep(mock.Anything).
		Run(func(context.Context) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(&usecase.SweepResult{}, nil)

	s := newTestSweeper(maintenance)
	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("sweeper did not tick")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.stop(ctx))
	require.NoError(t, <-served)
}

func TestSweeper_FailureKeepsRunning(t *testing.T) {
	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)
	calls := make(chan struct{}, 8)
	maintenance.EXPECT().Sweep(mock.Anything).
		Run(func(context.Context) {
			select {
			case calls <- struct{}{}:
			default:
			}
		}).
		Return(nil, errors.New("db down"))

	s := newTestSweeper(maintenance)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- s.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("sweeper stopped after a failure")
		}
	}

	cancel()
	assert.NoError(t, <-served)
}
