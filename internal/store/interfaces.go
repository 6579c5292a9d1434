// Package store implements the reconciliation cache: the authoritative local
// record of archive identity, name, and existence, reconciled against remote
// inventory snapshots.
//
// The cache is the only component of the application with memory across
// invocations. It is a single-writer local database (SQLite by default,
// Postgres optionally) keyed by an explicit account identity so one database
// can serve several remote accounts without collision.
package store

import (
	"context"
	"time"

	"github.com/icebox-archive/icebox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_mock.go -package=mock

// InventoryLag is the assumed maximum delay between a vault change and its
// reflection in a newly generated inventory.
//
// There is a lag between an archive being created and the archive appearing
// on an inventory. Even if the inventory has an InventoryDate of after the
// archive was created, it still doesn't necessarily appear. So only warn of
// a missing archive if the archive still hasn't appeared on an inventory
// created InventoryLag after the archive was uploaded successfully.
const InventoryLag = 72 * time.Hour

// Sighting is one archive entry observed in a freshly retrieved inventory,
// together with the dates needed for the lag-tolerant merge rule.
type Sighting struct {
	Vault string
	ID    string
	Name  string
	Size  int64

	// UpstreamCreationDate is when the remote side created the archive.
	UpstreamCreationDate time.Time
	// UpstreamInventoryDate is the inventory snapshot's own stated date.
	UpstreamInventoryDate time.Time
	// JobCreationDate is when the inventory-retrieval job that produced
	// this snapshot was submitted.
	JobCreationDate time.Time
}

// Cache is the repository interface over the reconciliation store.
//
// References ("ref" parameters) take three forms: "id:<x>" for an exact id
// lookup, "name:<x>" for an exact name lookup, and a bare string treated as
// a name. A ref must match exactly one live (non-tombstoned) record;
// [ErrArchiveNotFound] and [ErrAmbiguousRef] report the failure modes.
type Cache interface {
	// RecordUpload inserts a new live record for a just-uploaded archive,
	// with CreatedHere set to now. Names are not unique, so no uniqueness
	// check is performed against the name.
	RecordUpload(ctx context.Context, vault, name, id string, size int64) error

	// Resolve returns the single live record matching ref.
	Resolve(ctx context.Context, vault, ref string) (models.Archive, error)

	// LastSeen returns LastSeenUpstream when set, else CreatedHere, for the
	// single live record matching ref.
	LastSeen(ctx context.Context, vault, ref string) (time.Time, error)

	// ListNames returns one display line per live record, ordered by name
	// then id. A uniquely named archive yields its bare name (prefixed with
	// "name:" only when the name itself collides with reference syntax);
	// archives sharing a name each yield "id:<x>\t<name>" so every line
	// resolves unambiguously on re-input.
	ListNames(ctx context.Context, vault string) ([]string, error)

	// ListWithIDs returns every live record as "id:<x>\t<name>",
	// unconditionally.
	ListWithIDs(ctx context.Context, vault string) ([]string, error)

	// ArchiveName returns the name of the single live record matching ref.
	ArchiveName(ctx context.Context, vault, ref string) (string, error)

	// DeleteRecord tombstones the single live record matching ref by
	// setting DeletedHere to now. The record is purged later, once an
	// inventory confirms the remote side no longer lists it.
	DeleteRecord(ctx context.Context, vault, ref string) error

	// BeginMerge opens the transaction within which one full inventory is
	// merged. All sightings and the finalize step commit atomically, so a
	// crash mid-merge leaves no partial state observable on restart.
	BeginMerge(ctx context.Context) (MergeTx, error)

	// Close releases the underlying database handle.
	Close() error
}

// MergeTx is the unit of work for merging a single inventory snapshot.
// Callers apply one MergeSighting per inventory entry, then exactly one
// FinalizeInventory, then Commit. Rollback discards everything and is safe
// to defer after a failed merge.
type MergeTx interface {
	// MergeSighting applies the lag-tolerant merge rule for one inventory
	// entry: the archive is taken to have existed no later than
	// max(UpstreamInventoryDate, JobCreationDate−InventoryLag), and
	// LastSeenUpstream advances monotonically to that value. Missing
	// records are created; name/size discrepancies are corrected only when
	// fix is set, and are always logged.
	MergeSighting(ctx context.Context, s Sighting, fix bool) error

	// FinalizeInventory reconciles the records the inventory did not
	// mention: tombstoned records whose deletion predates the inventory are
	// purged; previously known-present records that vanished are flagged as
	// disappeared (purged only when fix is set); records too recent to
	// expect inventory coverage are left untouched.
	FinalizeInventory(ctx context.Context, vault string, inventoryDate time.Time, seenIDs []string, fix bool) error

	Commit() error
	Rollback() error
}
