// Package adapter provides the transport layer for communicating with the
// remote archive service.
//
// The primary abstraction is [VaultService], which decouples the service
// layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPVaultService]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/icebox-archive/icebox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService defines transport-agnostic communication with the archive
// service. The service's only listing primitives are jobs and uploads:
// archive listings exist solely as inventory-retrieval job output, which is
// why there is no ListArchives method here.
type VaultService interface {
	// ListVaults returns all vaults owned by the configured account.
	ListVaults(ctx context.Context) ([]models.Vault, error)

	// CreateVault creates a vault with the given name. Creating a vault
	// that already exists is not an error on the remote side.
	CreateVault(ctx context.Context, vault string) error

	// DeleteVault removes an empty vault. Returns ErrNotFound (wrapped) if
	// no such vault exists.
	DeleteVault(ctx context.Context, vault string) error

	// ListJobs returns all jobs the service currently reports for the
	// vault, regardless of action or status.
	ListJobs(ctx context.Context, vault string) ([]models.Job, error)

	// InitiateInventoryJob submits an inventory-retrieval job and returns
	// its id.
	InitiateInventoryJob(ctx context.Context, vault string) (string, error)

	// InitiateRetrievalJob submits an archive-retrieval job for archiveID
	// and returns the job id.
	InitiateRetrievalJob(ctx context.Context, vault, archiveID string) (string, error)

	// GetJobOutput streams the whole output of a completed job. The caller
	// must close the returned reader.
	GetJobOutput(ctx context.Context, vault, jobID string) (io.ReadCloser, error)

	// GetJobOutputRange streams the half-open byte range [start, end) of a
	// completed job's output. The caller must close the returned reader.
	GetJobOutputRange(ctx context.Context, vault, jobID string, start, end int64) (io.ReadCloser, error)

	// UploadArchive performs a single-request archive upload and returns
	// the new archive id. treeHash is verified server-side.
	UploadArchive(ctx context.Context, vault, description, treeHash string, size int64, body io.Reader) (string, error)

	// InitiateMultipartUpload opens a multipart session and returns the
	// upload id. partSize applies to every part except the last.
	InitiateMultipartUpload(ctx context.Context, vault, description string, partSize int64) (string, error)

	// UploadPart sends the bytes of the half-open range [start, end) for an
	// open multipart session.
	UploadPart(ctx context.Context, vault, uploadID string, start, end int64, body io.Reader) error

	// CompleteMultipartUpload closes a multipart session, reporting the
	// total size and whole-archive tree hash for server-side verification,
	// and returns the new archive id.
	CompleteMultipartUpload(ctx context.Context, vault, uploadID string, size int64, treeHash string) (string, error)

	// AbortMultipartUpload discards an open multipart session so it is not
	// left dangling after a failed upload.
	AbortMultipartUpload(ctx context.Context, vault, uploadID string) error

	// DeleteArchive removes an archive by id. The deletion will only be
	// reflected in inventories generated afterwards.
	DeleteArchive(ctx context.Context, vault, archiveID string) error
}
