package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/icebox-archive/icebox/internal/adapter"
	"github.com/icebox-archive/icebox/internal/config"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/internal/store"
	"github.com/icebox-archive/icebox/internal/transfer"
	"github.com/icebox-archive/icebox/models"
)

// ArchiveService implements the archive-level use cases: upload, retrieval,
// deletion, listing, and presence checks. Every operation that names an
// archive accepts the cache's reference syntax ("id:<x>", "name:<x>", bare
// name).
type ArchiveService struct {
	cache  store.Cache
	remote adapter.VaultService
	engine *transfer.Engine
	jobs   *Coordinator
	sync   *SyncService
	cfg    config.Transfer
	log    *logger.Logger
	now    func() time.Time
}

func NewArchiveService(cache store.Cache, remote adapter.VaultService, engine *transfer.Engine,
	jobs *Coordinator, sync *SyncService, cfg config.Transfer, log *logger.Logger) *ArchiveService {
	return &ArchiveService{
		cache:  cache,
		remote: remote,
		engine: engine,
		jobs:   jobs,
		sync:   sync,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// Upload pushes src into the vault under name and records the new archive in
// the cache so it resolves by name immediately, without waiting for the next
// inventory.
func (s *ArchiveService) Upload(ctx context.Context, vault, name string, src io.ReadSeeker) (string, error) {
	id, size, err := s.engine.Upload(ctx, vault, name, src, s.cfg.UploadPartSize)
	if err != nil {
		return "", err
	}

	if err = s.cache.RecordUpload(ctx, vault, name, id, size); err != nil {
		// The archive exists upstream now; losing the local record means it
		// only resolves by id until the next inventory sync.
		s.log.Error().
			Err(err).
			Str("vault", vault).
			Str("archive_id", id).
			Msg("archive uploaded but local record failed")
		return "", fmt.Errorf("archive %s uploaded but not recorded locally: %w", id, err)
	}

	s.log.Info().
		Str("vault", vault).
		Str("archive_id", id).
		Int64("size", size).
		Msg("archive uploaded")
	return id, nil
}

// Retrieve stages the archive named by ref and streams its content into dst.
//
// Retrieval is asynchronous on the remote side: an existing completed job is
// consumed directly, otherwise Retrieve blocks on a pending or fresh job
// (wait) or returns *RetryableError.
func (s *ArchiveService) Retrieve(ctx context.Context, vault, ref string, dst io.Writer, wait bool) error {
	archive, err := s.cache.Resolve(ctx, vault, ref)
	if err != nil {
		return err
	}

	complete, pending, err := s.jobs.FindRetrievalJob(ctx, vault, archive.ID)
	if err != nil {
		return err
	}

	if complete != nil {
		return s.engine.Download(ctx, vault, *complete, dst, s.cfg.RetrievePartSize)
	}

	if pending == nil {
		jobID, err := s.remote.InitiateRetrievalJob(ctx, vault, archive.ID)
		if err != nil {
			return err
		}
		s.log.Info().
			Str("vault", vault).
			Str("archive_id", archive.ID).
			Str("job_id", jobID).
			Msg("archive retrieval job submitted")

		if !wait {
			return &RetryableError{Reason: "archive retrieval job queued; rerun later or pass -wait"}
		}
		job, err := s.jobs.WaitUntilComplete(ctx, vault, jobID)
		if err != nil {
			return err
		}
		return s.engine.Download(ctx, vault, job, dst, s.cfg.RetrievePartSize)
	}

	if !wait {
		return &RetryableError{Reason: "archive retrieval job still in progress; rerun later or pass -wait"}
	}
	job, err := s.jobs.WaitUntilComplete(ctx, vault, pending.ID)
	if err != nil {
		return err
	}
	return s.engine.Download(ctx, vault, job, dst, s.cfg.RetrievePartSize)
}

// Delete removes the archive named by ref upstream and tombstones its cache
// record. The tombstone survives until an inventory generated after the
// deletion confirms the archive is gone.
func (s *ArchiveService) Delete(ctx context.Context, vault, ref string) error {
	archive, err := s.cache.Resolve(ctx, vault, ref)
	if err != nil {
		return err
	}

	if err = s.remote.DeleteArchive(ctx, vault, archive.ID); err != nil {
		return err
	}
	if err = s.cache.DeleteRecord(ctx, vault, "id:"+archive.ID); err != nil {
		return err
	}

	s.log.Info().
		Str("vault", vault).
		Str("archive_id", archive.ID).
		Msg("archive deleted")
	return nil
}

// CheckPresent confirms that the archive named by ref existed upstream no
// longer than maxAge ago. Stale or missing evidence triggers an inventory
// sync (bounded by the same maxAge) before the final verdict. Absence or
// still-stale evidence returns ErrPresenceUnconfirmed (wrapped), or
// ErrArchiveNotFound when the cache has no record at all.
func (s *ArchiveService) CheckPresent(ctx context.Context, vault, ref string, maxAge time.Duration, wait bool) (models.Archive, error) {
	archive, err := s.cache.Resolve(ctx, vault, ref)
	if err == nil && s.fresh(archive, maxAge) {
		return archive, nil
	}
	if err != nil && !errors.Is(err, store.ErrArchiveNotFound) {
		return models.Archive{}, err
	}

	if err = s.sync.Sync(ctx, vault, maxAge, false, wait); err != nil {
		return models.Archive{}, err
	}

	archive, err = s.cache.Resolve(ctx, vault, ref)
	if err != nil {
		return models.Archive{}, err
	}
	if !s.fresh(archive, maxAge) {
		return models.Archive{}, fmt.Errorf("%w: %s last seen %s",
			ErrPresenceUnconfirmed, ref, archive.LastSeen().Format(time.RFC3339))
	}
	return archive, nil
}

func (s *ArchiveService) fresh(archive models.Archive, maxAge time.Duration) bool {
	return s.now().Sub(archive.LastSeen()) <= maxAge
}

// ResolveName returns the stored name of the archive named by ref. Unnamed
// archives yield the empty string.
func (s *ArchiveService) ResolveName(ctx context.Context, vault, ref string) (string, error) {
	return s.cache.ArchiveName(ctx, vault, ref)
}

// ListNames returns the vault's live archives as resolvable display lines.
// forceIDs switches every line to the explicit id form.
func (s *ArchiveService) ListNames(ctx context.Context, vault string, forceIDs bool) ([]string, error) {
	if forceIDs {
		return s.cache.ListWithIDs(ctx, vault)
	}
	return s.cache.ListNames(ctx, vault)
}
