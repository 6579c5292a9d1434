package transfer

import (
	"context"
	"fmt"
	"io"

	"github.com/icebox-archive/icebox/internal/adapter"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/models"
)

// IntegrityError reports a mismatch between the tree hash computed over
// downloaded content and the hash the job reported for the archive.
type IntegrityError struct {
	Computed string
	Reported string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("retrieved file integrity mismatch: computed %s, expected %s", e.Computed, e.Reported)
}

// Engine moves archive content between local seekable streams and the remote
// service, splitting transfers into parts and verifying tree hashes.
type Engine struct {
	remote adapter.VaultService
	log    *logger.Logger
}

func NewEngine(remote adapter.VaultService, log *logger.Logger) *Engine {
	return &Engine{remote: remote, log: log}
}

// Upload pushes the full content of src into the vault under description and
// returns the new archive's id and size. Content no larger than partSize goes
// up in a single request; anything larger uses a multipart session with one
// windowed reader per part, so a failed part can be retried from its own
// window without disturbing the rest of the stream.
func (e *Engine) Upload(ctx context.Context, vault, description string, src io.ReadSeeker, partSize int64) (string, int64, error) {
	if err := ValidatePartSize(partSize); err != nil {
		return "", 0, err
	}

	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return "", 0, fmt.Errorf("determine upload size: %w", err)
	}
	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return "", 0, fmt.Errorf("rewind for hashing: %w", err)
	}

	treeHash, err := TreeHash(src)
	if err != nil {
		return "", 0, err
	}
	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return "", 0, fmt.Errorf("rewind for upload: %w", err)
	}

	if size <= partSize {
		id, err := e.remote.UploadArchive(ctx, vault, description, treeHash, size, src)
		if err != nil {
			return "", 0, err
		}
		return id, size, nil
	}

	id, err := e.multipartUpload(ctx, vault, description, src, size, partSize, treeHash)
	if err != nil {
		return "", 0, err
	}
	return id, size, nil
}

func (e *Engine) multipartUpload(ctx context.Context, vault, description string, src io.ReadSeeker, size, partSize int64, treeHash string) (string, error) {
	uploadID, err := e.remote.InitiateMultipartUpload(ctx, vault, description, partSize)
	if err != nil {
		return "", err
	}

	e.log.Debug().
		Str("vault", vault).
		Str("upload_id", uploadID).
		Int64("size", size).
		Int64("part_size", partSize).
		Msg("multipart upload started")

	for _, part := range Plan(size, partSize) {
		window, err := NewWindowedReader(src, part.Start, part.End)
		if err != nil {
			e.abort(vault, uploadID)
			return "", fmt.Errorf("window part [%d,%d): %w", part.Start, part.End, err)
		}

		if err = e.remote.UploadPart(ctx, vault, uploadID, part.Start, part.End, window); err != nil {
			e.abort(vault, uploadID)
			return "", fmt.Errorf("upload part [%d,%d): %w", part.Start, part.End, err)
		}

		e.log.Debug().
			Str("upload_id", uploadID).
			Int64("start", part.Start).
			Int64("end", part.End).
			Msg("part uploaded")
	}

	id, err := e.remote.CompleteMultipartUpload(ctx, vault, uploadID, size, treeHash)
	if err != nil {
		e.abort(vault, uploadID)
		return "", err
	}
	return id, nil
}

// abort discards a failed multipart session. Best effort: the upload error is
// what the caller needs to see, not a secondary abort failure.
func (e *Engine) abort(vault, uploadID string) {
	if err := e.remote.AbortMultipartUpload(context.Background(), vault, uploadID); err != nil {
		e.log.Warn().
			Err(err).
			Str("vault", vault).
			Str("upload_id", uploadID).
			Msg("failed to abort multipart upload; session may linger")
	}
}

// Download streams the output of a completed retrieval job into dst. Output
// larger than partSize is fetched in ranged requests; if dst supports
// truncation it is pre-sized to the archive length first. When the job
// reports a tree hash and dst can be re-read, the downloaded content is
// verified and a mismatch fails with *IntegrityError.
func (e *Engine) Download(ctx context.Context, vault string, job models.Job, dst io.Writer, partSize int64) error {
	if err := ValidatePartSize(partSize); err != nil {
		return err
	}

	size := job.ArchiveSizeInBytes
	if t, ok := dst.(interface{ Truncate(int64) error }); ok && size > 0 {
		if err := t.Truncate(size); err != nil {
			return fmt.Errorf("pre-size output: %w", err)
		}
	}

	if size > partSize {
		for _, part := range Plan(size, partSize) {
			if err := e.downloadRange(ctx, vault, job.ID, part, dst); err != nil {
				return err
			}
		}
	} else {
		body, err := e.remote.GetJobOutput(ctx, vault, job.ID)
		if err != nil {
			return err
		}
		_, err = io.Copy(dst, body)
		body.Close()
		if err != nil {
			return fmt.Errorf("download job output: %w", err)
		}
	}

	return e.verify(job, dst)
}

func (e *Engine) downloadRange(ctx context.Context, vault, jobID string, part ByteRange, dst io.Writer) error {
	body, err := e.remote.GetJobOutputRange(ctx, vault, jobID, part.Start, part.End)
	if err != nil {
		return err
	}
	defer body.Close()

	n, err := io.Copy(dst, body)
	if err != nil {
		return fmt.Errorf("download range [%d,%d): %w", part.Start, part.End, err)
	}
	if n != part.Len() {
		return fmt.Errorf("download range [%d,%d): got %d bytes, want %d", part.Start, part.End, n, part.Len())
	}
	return nil
}

// verify re-reads dst and compares its tree hash with the one the job
// reported. A destination that cannot be re-read, such as a pipe to stdout,
// is skipped with a warning rather than failed.
func (e *Engine) verify(job models.Job, dst io.Writer) error {
	if job.SHA256TreeHash == "" {
		e.log.Warn().
			Str("job_id", job.ID).
			Msg("job reports no tree hash; skipping verification")
		return nil
	}

	rs, ok := dst.(io.ReadSeeker)
	if !ok {
		e.log.Warn().
			Str("job_id", job.ID).
			Msg("output is not re-readable; skipping verification")
		return nil
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind for verification: %w", err)
	}
	computed, err := TreeHash(rs)
	if err != nil {
		return fmt.Errorf("verify download: %w", err)
	}
	if computed != job.SHA256TreeHash {
		return &IntegrityError{Computed: computed, Reported: job.SHA256TreeHash}
	}

	e.log.Debug().
		Str("job_id", job.ID).
		Str("tree_hash", computed).
		Msg("download verified")
	return nil
}
