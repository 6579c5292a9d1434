package models

import "time"

// JobAction identifies the kind of asynchronous work a remote job performs.
type JobAction string

const (
	// JobActionArchiveRetrieval stages a single archive's content for download.
	JobActionArchiveRetrieval JobAction = "ArchiveRetrieval"
	// JobActionInventoryRetrieval generates a snapshot listing of a vault.
	JobActionInventoryRetrieval JobAction = "InventoryRetrieval"
)

// JobStatus is the remote-reported state of a job.
type JobStatus string

const (
	JobStatusInProgress JobStatus = "InProgress"
	JobStatusSucceeded  JobStatus = "Succeeded"
	JobStatusFailed     JobStatus = "Failed"
)

// Job is a remote asynchronous operation. Jobs are owned entirely by the
// remote service; the client lists and polls them but never persists them.
type Job struct {
	ID         string    `json:"id"`
	Action     JobAction `json:"action"`
	StatusCode JobStatus `json:"status"`

	// ArchiveID is set for archive-retrieval jobs only.
	ArchiveID string `json:"archiveId,omitempty"`

	// ArchiveSizeInBytes is the staged archive's size, reported once the
	// retrieval job completes.
	ArchiveSizeInBytes int64 `json:"archiveSizeInBytes,omitempty"`

	// SHA256TreeHash is the integrity digest of the staged content, reported
	// by the service for completed archive retrievals.
	SHA256TreeHash string `json:"sha256TreeHash,omitempty"`

	CreationDate   time.Time  `json:"creationDate"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
}

// Completed reports whether the job finished successfully. Failed jobs are
// neither completed nor pending: they are ignored during job selection and a
// fresh job is submitted in their place.
func (j Job) Completed() bool {
	return j.StatusCode == JobStatusSucceeded
}

// Pending reports whether the job is still running remotely.
func (j Job) Pending() bool {
	return j.StatusCode == JobStatusInProgress
}
