// Package service implements the application's use cases on top of the
// transport adapter, the reconciliation cache, and the transfer engine: vault
// administration, job coordination, inventory synchronization, and the
// archive operations themselves.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/icebox-archive/icebox/internal/adapter"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/internal/store"
	"github.com/icebox-archive/icebox/models"
)

// SyncService reconciles the local cache with remote inventory snapshots.
type SyncService struct {
	cache  store.Cache
	remote adapter.VaultService
	jobs   *Coordinator
	log    *logger.Logger
}

func NewSyncService(cache store.Cache, remote adapter.VaultService, jobs *Coordinator, log *logger.Logger) *SyncService {
	return &SyncService{cache: cache, remote: remote, jobs: jobs, log: log}
}

// Sync brings the cache up to date with the vault's latest inventory.
//
// A completed inventory job no older than maxAge is consumed directly. With a
// job still pending, or no job at all, Sync either blocks on it (wait) or
// returns *RetryableError so the caller can come back once the snapshot is
// staged. fix propagates to the merge: discrepancies are corrected rather
// than just reported.
func (s *SyncService) Sync(ctx context.Context, vault string, maxAge time.Duration, fix, wait bool) error {
	complete, pending, err := s.jobs.FindInventoryJob(ctx, vault, maxAge)
	if err != nil {
		return err
	}

	if complete != nil {
		s.log.Debug().
			Str("vault", vault).
			Str("job_id", complete.ID).
			Msg("reusing completed inventory job")
		return s.reconcile(ctx, vault, *complete, fix)
	}

	if pending == nil {
		jobID, err := s.remote.InitiateInventoryJob(ctx, vault)
		if err != nil {
			return err
		}
		s.log.Info().
			Str("vault", vault).
			Str("job_id", jobID).
			Msg("inventory retrieval job submitted")

		if !wait {
			return &RetryableError{Reason: "inventory retrieval job queued; rerun later or pass -wait"}
		}
		job, err := s.jobs.WaitUntilComplete(ctx, vault, jobID)
		if err != nil {
			return err
		}
		return s.reconcile(ctx, vault, job, fix)
	}

	if !wait {
		return &RetryableError{Reason: "inventory retrieval job still in progress; rerun later or pass -wait"}
	}
	job, err := s.jobs.WaitUntilComplete(ctx, vault, pending.ID)
	if err != nil {
		return err
	}
	return s.reconcile(ctx, vault, job, fix)
}

// reconcile downloads one completed inventory job's output and merges it into
// the cache in a single transaction.
func (s *SyncService) reconcile(ctx context.Context, vault string, job models.Job, fix bool) error {
	body, err := s.remote.GetJobOutput(ctx, vault, job.ID)
	if err != nil {
		return err
	}
	defer body.Close()

	var inventory models.Inventory
	if err = json.NewDecoder(body).Decode(&inventory); err != nil {
		return fmt.Errorf("decode inventory job output: %w", err)
	}

	tx, err := s.cache.BeginMerge(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	seen := make([]string, 0, len(inventory.Archives))
	for _, entry := range inventory.Archives {
		sighting := store.Sighting{
			Vault:                 vault,
			ID:                    entry.ID,
			Name:                  entry.Description,
			Size:                  entry.Size,
			UpstreamCreationDate:  entry.CreationDate,
			UpstreamInventoryDate: inventory.InventoryDate,
			JobCreationDate:       job.CreationDate,
		}
		if err = tx.MergeSighting(ctx, sighting, fix); err != nil {
			return err
		}
		seen = append(seen, entry.ID)
	}

	if err = tx.FinalizeInventory(ctx, vault, inventory.InventoryDate, seen, fix); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	s.log.Info().
		Str("vault", vault).
		Time("inventory_date", inventory.InventoryDate).
		Int("archives", len(inventory.Archives)).
		Msg("inventory merged")
	return nil
}
