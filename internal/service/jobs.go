package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/icebox-archive/icebox/internal/adapter"
	"github.com/icebox-archive/icebox/internal/config"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/models"
)

// errStillPending drives the poll loop; it never escapes WaitUntilComplete.
var errStillPending = errors.New("job still in progress")

// Coordinator finds reusable remote jobs and waits on pending ones. Jobs live
// entirely on the remote side; the coordinator re-lists them on every call
// rather than caching anything.
type Coordinator struct {
	remote   adapter.VaultService
	interval time.Duration
	attempts int
	log      *logger.Logger
	now      func() time.Time
}

func NewCoordinator(remote adapter.VaultService, cfg config.Jobs, log *logger.Logger) *Coordinator {
	return &Coordinator{
		remote:   remote,
		interval: cfg.PollInterval,
		attempts: cfg.PollAttempts,
		log:      log,
		now:      time.Now,
	}
}

// FindRetrievalJob looks for existing archive-retrieval jobs for archiveID.
// complete is the successful job with the most recent completion date, if
// any; pending is a still-running one. Failed jobs are skipped entirely so
// the caller submits a replacement.
func (c *Coordinator) FindRetrievalJob(ctx context.Context, vault, archiveID string) (complete, pending *models.Job, err error) {
	jobs, err := c.remote.ListJobs(ctx, vault)
	if err != nil {
		return nil, nil, err
	}

	for i := range jobs {
		job := jobs[i]
		if job.Action != models.JobActionArchiveRetrieval || job.ArchiveID != archiveID {
			continue
		}
		c.consider(job, &complete, &pending)
	}
	return complete, pending, nil
}

// FindInventoryJob looks for existing inventory-retrieval jobs for the vault.
// A successful job only counts as complete when maxAge is positive and the
// job finished within maxAge of now; maxAge <= 0 forces a fresh snapshot, so
// only pending jobs are reported.
func (c *Coordinator) FindInventoryJob(ctx context.Context, vault string, maxAge time.Duration) (complete, pending *models.Job, err error) {
	jobs, err := c.remote.ListJobs(ctx, vault)
	if err != nil {
		return nil, nil, err
	}

	cutoff := c.now().Add(-maxAge)
	for i := range jobs {
		job := jobs[i]
		if job.Action != models.JobActionInventoryRetrieval {
			continue
		}
		if job.Completed() && (maxAge <= 0 || job.CompletionDate == nil || job.CompletionDate.Before(cutoff)) {
			continue
		}
		c.consider(job, &complete, &pending)
	}
	return complete, pending, nil
}

// consider folds one candidate job into the selection: the most recently
// completed job wins among completed ones, any pending job is remembered.
func (c *Coordinator) consider(job models.Job, complete, pending **models.Job) {
	switch {
	case job.Completed():
		if *complete == nil || completedAfter(job, **complete) {
			*complete = &job
		}
	case job.Pending():
		if *pending == nil {
			*pending = &job
		}
	}
}

func completedAfter(a, b models.Job) bool {
	if a.CompletionDate == nil || b.CompletionDate == nil {
		return b.CompletionDate == nil
	}
	return a.CompletionDate.After(*b.CompletionDate)
}

// WaitUntilComplete polls the vault's job list until jobID succeeds, fails,
// or the polling budget runs out. Exhaustion returns *TimeoutError; a
// cancelled context propagates its error so interrupts surface immediately.
func (c *Coordinator) WaitUntilComplete(ctx context.Context, vault, jobID string) (models.Job, error) {
	var found models.Job

	// WithMaxRetries counts retries after the initial try, so a budget of
	// attempts polls allows attempts-1 retries.
	backoff := retry.WithMaxRetries(uint64(max(c.attempts-1, 0)), retry.NewConstant(c.interval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		jobs, err := c.remote.ListJobs(ctx, vault)
		if err != nil {
			// Transient listing failures consume poll attempts rather than
			// aborting a wait that may span many hours.
			c.log.Warn().Err(err).Str("vault", vault).Msg("job poll failed")
			return retry.RetryableError(err)
		}

		for _, job := range jobs {
			if job.ID != jobID {
				continue
			}
			switch {
			case job.Completed():
				found = job
				return nil
			case job.Pending():
				c.log.Debug().Str("job_id", jobID).Msg("job still in progress")
				return retry.RetryableError(errStillPending)
			default:
				return fmt.Errorf("%w: %s", ErrJobFailed, jobID)
			}
		}
		return fmt.Errorf("%w: job %s", adapter.ErrNotFound, jobID)
	})
	if err != nil {
		if errors.Is(err, errStillPending) {
			return models.Job{}, &TimeoutError{Interval: c.interval, Attempts: c.attempts}
		}
		return models.Job{}, err
	}

	return found, nil
}
