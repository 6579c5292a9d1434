package store

import "errors"

// Sentinel errors returned by cache methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrArchiveNotFound is returned when a reference matches no live
	// record in the requested vault.
	ErrArchiveNotFound = errors.New("archive not found")

	// ErrAmbiguousRef is returned when a reference matches more than one
	// live record. The caller must retry with an "id:" reference; the
	// cache never guesses.
	ErrAmbiguousRef = errors.New("reference matches more than one archive")

	// ErrArchiveExists is returned when RecordUpload collides with an
	// already-recorded archive id in the same (account, vault) namespace.
	ErrArchiveExists = errors.New("archive id already recorded")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan archive row")
)
