package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/icebox-archive/icebox/internal/config"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/internal/mock"
	"github.com/icebox-archive/icebox/models"
)

var testNow = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestCoordinator(t *testing.T, attempts int) (*Coordinator, *mock.MockVaultService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := mock.NewMockVaultService(ctrl)

	c := NewCoordinator(remote, config.Jobs{
		PollInterval: time.Millisecond,
		PollAttempts: attempts,
	}, logger.Nop())
	c.now = func() time.Time { return testNow }
	return c, remote
}

func completedAt(t time.Time) *time.Time { return &t }

func retrieval(id, archiveID string, status models.JobStatus, done *time.Time) models.Job {
	return models.Job{
		ID:             id,
		Action:         models.JobActionArchiveRetrieval,
		StatusCode:     status,
		ArchiveID:      archiveID,
		CompletionDate: done,
	}
}

func inventory(id string, status models.JobStatus, done *time.Time) models.Job {
	return models.Job{
		ID:             id,
		Action:         models.JobActionInventoryRetrieval,
		StatusCode:     status,
		CompletionDate: done,
	}
}

func TestFindRetrievalJob(t *testing.T) {
	c, remote := newTestCoordinator(t, 1)
	ctx := context.Background()

	remote.EXPECT().ListJobs(ctx, "vault1").Return([]models.Job{
		retrieval("j-old", "A1", models.JobStatusSucceeded, completedAt(testNow.Add(-2*time.Hour))),
		retrieval("j-new", "A1", models.JobStatusSucceeded, completedAt(testNow.Add(-time.Hour))),
		retrieval("j-other", "B2", models.JobStatusSucceeded, completedAt(testNow)),
		retrieval("j-failed", "A1", models.JobStatusFailed, nil),
		retrieval("j-pending", "A1", models.JobStatusInProgress, nil),
		inventory("j-inv", models.JobStatusSucceeded, completedAt(testNow)),
	}, nil)

	complete, pending, err := c.FindRetrievalJob(ctx, "vault1", "A1")
	require.NoError(t, err)

	require.NotNil(t, complete)
	assert.Equal(t, "j-new", complete.ID, "most recently completed job wins")
	require.NotNil(t, pending)
	assert.Equal(t, "j-pending", pending.ID)
}

func TestFindRetrievalJobNone(t *testing.T) {
	c, remote := newTestCoordinator(t, 1)
	ctx := context.Background()

	remote.EXPECT().ListJobs(ctx, "vault1").Return(nil, nil)

	complete, pending, err := c.FindRetrievalJob(ctx, "vault1", "A1")
	require.NoError(t, err)
	assert.Nil(t, complete)
	assert.Nil(t, pending)
}

func TestFindInventoryJobMaxAge(t *testing.T) {
	recent := inventory("j-recent", models.JobStatusSucceeded, completedAt(testNow.Add(-time.Hour)))
	stale := inventory("j-stale", models.JobStatusSucceeded, completedAt(testNow.Add(-48*time.Hour)))
	pending := inventory("j-pending", models.JobStatusInProgress, nil)

	tests := []struct {
		name         string
		jobs         []models.Job
		maxAge       time.Duration
		wantComplete string
		wantPending  string
	}{
		{
			name:         "recent completion accepted",
			jobs:         []models.Job{stale, recent, pending},
			maxAge:       24 * time.Hour,
			wantComplete: "j-recent",
			wantPending:  "j-pending",
		},
		{
			name:        "stale completion rejected",
			jobs:        []models.Job{stale, pending},
			maxAge:      24 * time.Hour,
			wantPending: "j-pending",
		},
		{
			name:        "zero max age forces fresh snapshot",
			jobs:        []models.Job{recent, pending},
			maxAge:      0,
			wantPending: "j-pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, remote := newTestCoordinator(t, 1)
			ctx := context.Background()
			remote.EXPECT().ListJobs(ctx, "vault1").Return(tt.jobs, nil)

			complete, pend, err := c.FindInventoryJob(ctx, "vault1", tt.maxAge)
			require.NoError(t, err)

			if tt.wantComplete == "" {
				assert.Nil(t, complete)
			} else {
				require.NotNil(t, complete)
				assert.Equal(t, tt.wantComplete, complete.ID)
			}
			if tt.wantPending == "" {
				assert.Nil(t, pend)
			} else {
				require.NotNil(t, pend)
				assert.Equal(t, tt.wantPending, pend.ID)
			}
		})
	}
}

func TestWaitUntilComplete(t *testing.T) {
	c, remote := newTestCoordinator(t, 5)
	ctx := context.Background()

	polls := 0
	remote.EXPECT().ListJobs(ctx, "vault1").DoAndReturn(
		func(context.Context, string) ([]models.Job, error) {
			polls++
			if polls < 3 {
				return []models.Job{inventory("j-1", models.JobStatusInProgress, nil)}, nil
			}
			return []models.Job{inventory("j-1", models.JobStatusSucceeded, completedAt(testNow))}, nil
		}).Times(3)

	job, err := c.WaitUntilComplete(ctx, "vault1", "j-1")
	require.NoError(t, err)
	assert.Equal(t, "j-1", job.ID)
	assert.True(t, job.Completed())
}

func TestWaitUntilCompleteTimeout(t *testing.T) {
	c, remote := newTestCoordinator(t, 2)
	ctx := context.Background()

	// The budget is the total poll count: two attempts means exactly two
	// ListJobs calls, not an initial try plus two retries.
	remote.EXPECT().ListJobs(ctx, "vault1").
		Return([]models.Job{inventory("j-1", models.JobStatusInProgress, nil)}, nil).
		Times(2)

	_, err := c.WaitUntilComplete(ctx, "vault1", "j-1")

	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, 2, timeout.Attempts)
}

func TestWaitUntilCompleteJobFailed(t *testing.T) {
	c, remote := newTestCoordinator(t, 5)
	ctx := context.Background()

	remote.EXPECT().ListJobs(ctx, "vault1").
		Return([]models.Job{inventory("j-1", models.JobStatusFailed, nil)}, nil)

	_, err := c.WaitUntilComplete(ctx, "vault1", "j-1")
	assert.ErrorIs(t, err, ErrJobFailed)
}

func TestWaitUntilCompleteSurvivesTransientPollFailure(t *testing.T) {
	c, remote := newTestCoordinator(t, 5)
	ctx := context.Background()

	polls := 0
	remote.EXPECT().ListJobs(ctx, "vault1").DoAndReturn(
		func(context.Context, string) ([]models.Job, error) {
			polls++
			if polls == 1 {
				return nil, errors.New("connection reset")
			}
			return []models.Job{inventory("j-1", models.JobStatusSucceeded, completedAt(testNow))}, nil
		}).Times(2)

	job, err := c.WaitUntilComplete(ctx, "vault1", "j-1")
	require.NoError(t, err)
	assert.Equal(t, "j-1", job.ID)
}

func TestWaitUntilCompleteCancelled(t *testing.T) {
	c, remote := newTestCoordinator(t, 1000)
	ctx, cancel := context.WithCancel(context.Background())

	remote.EXPECT().ListJobs(gomock.Any(), "vault1").
		DoAndReturn(func(context.Context, string) ([]models.Job, error) {
			cancel()
			return []models.Job{inventory("j-1", models.JobStatusInProgress, nil)}, nil
		})

	_, err := c.WaitUntilComplete(ctx, "vault1", "j-1")
	assert.ErrorIs(t, err, context.Canceled)
}
