package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/models"
)

var archiveColumns = []string{
	"id", "account_key", "vault", "name", "size",
	"last_seen_upstream", "created_here", "deleted_here",
}

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// the same query helpers serve both plain reads and merge transactions.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// cacheRepository is the SQL-backed implementation of [Cache]. Every query
// is scoped by the account key it was constructed with.
type cacheRepository struct {
	db         *DB
	accountKey string
	logger     *logger.Logger
	now        func() time.Time
}

// NewCache constructs a [Cache] over db, namespaced by the explicit
// accountKey. The cache never discovers the account identity itself.
func NewCache(db *DB, accountKey string, log *logger.Logger) Cache {
	return &cacheRepository{
		db:         db,
		accountKey: accountKey,
		logger:     log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// refClause maps a reference string onto its filter condition.
func refClause(ref string) sq.Eq {
	switch {
	case strings.HasPrefix(ref, "id:"):
		return sq.Eq{"id": strings.TrimPrefix(ref, "id:")}
	case strings.HasPrefix(ref, "name:"):
		return sq.Eq{"name": strings.TrimPrefix(ref, "name:")}
	default:
		return sq.Eq{"name": ref}
	}
}

func (r *cacheRepository) RecordUpload(ctx context.Context, vault, name, id string, size int64) error {
	now := r.now()
	query, args, err := r.db.builder.
		Insert("archives").
		Columns("id", "account_key", "vault", "name", "size", "created_here").
		Values(id, r.accountKey, vault, name, size, now).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrArchiveExists, id)
		}
		r.logger.Err(err).
			Str("func", "cacheRepository.RecordUpload").
			Str("vault", vault).
			Str("archive_id", id).
			Msg("failed to insert archive record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *cacheRepository) Resolve(ctx context.Context, vault, ref string) (models.Archive, error) {
	return r.resolve(ctx, r.db, vault, ref)
}

func (r *cacheRepository) resolve(ctx context.Context, q querier, vault, ref string) (models.Archive, error) {
	matches, err := r.selectArchives(ctx, q, sq.And{
		sq.Eq{"account_key": r.accountKey, "vault": vault},
		sq.Eq{"deleted_here": nil},
		refClause(ref),
	}, "id")
	if err != nil {
		return models.Archive{}, err
	}

	switch len(matches) {
	case 0:
		return models.Archive{}, fmt.Errorf("%w: %s", ErrArchiveNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Archive{}, fmt.Errorf("%w: %s", ErrAmbiguousRef, ref)
	}
}

func (r *cacheRepository) LastSeen(ctx context.Context, vault, ref string) (time.Time, error) {
	archive, err := r.Resolve(ctx, vault, ref)
	if err != nil {
		return time.Time{}, err
	}
	return archive.LastSeen(), nil
}

func (r *cacheRepository) ArchiveName(ctx context.Context, vault, ref string) (string, error) {
	archive, err := r.Resolve(ctx, vault, ref)
	if err != nil {
		return "", err
	}
	return archive.Name, nil
}

func (r *cacheRepository) ListNames(ctx context.Context, vault string) ([]string, error) {
	live, err := r.listLive(ctx, vault)
	if err != nil {
		return nil, err
	}

	// live is ordered by name then id, so records sharing a name are
	// adjacent. A unique name is listed bare; colliding names are each
	// listed in the unambiguous id form.
	lines := make([]string, 0, len(live))
	for i := 0; i < len(live); {
		j := i + 1
		for j < len(live) && live[j].Name == live[i].Name {
			j++
		}
		if j-i == 1 {
			lines = append(lines, live[i].Ref(false))
		} else {
			for _, a := range live[i:j] {
				lines = append(lines, a.Ref(true)+"\t"+a.Name)
			}
		}
		i = j
	}

	return lines, nil
}

func (r *cacheRepository) ListWithIDs(ctx context.Context, vault string) ([]string, error) {
	live, err := r.listLive(ctx, vault)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(live))
	for _, a := range live {
		lines = append(lines, a.Ref(true)+"\t"+a.Name)
	}
	return lines, nil
}

func (r *cacheRepository) listLive(ctx context.Context, vault string) ([]models.Archive, error) {
	return r.selectArchives(ctx, r.db, sq.And{
		sq.Eq{"account_key": r.accountKey, "vault": vault},
		sq.Eq{"deleted_here": nil},
	}, "name", "id")
}

func (r *cacheRepository) DeleteRecord(ctx context.Context, vault, ref string) error {
	archive, err := r.Resolve(ctx, vault, ref)
	if err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Update("archives").
		Set("deleted_here", r.now()).
		Where(sq.Eq{"account_key": r.accountKey, "vault": vault, "id": archive.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *cacheRepository) Close() error {
	return r.db.Close()
}

func (r *cacheRepository) selectArchives(ctx context.Context, q querier, where sq.Sqlizer, orderBy ...string) ([]models.Archive, error) {
	query, args, err := r.db.builder.
		Select(archiveColumns...).
		From("archives").
		Where(where).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.selectArchives").
			Msg("failed to execute archive query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var result []models.Archive
	for rows.Next() {
		archive, err := scanArchive(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, archive)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return result, nil
}

func scanArchive(rows *sql.Rows) (models.Archive, error) {
	var (
		a           models.Archive
		name        sql.NullString
		size        sql.NullInt64
		lastSeen    sql.NullTime
		createdHere sql.NullTime
		deletedHere sql.NullTime
	)

	err := rows.Scan(&a.ID, &a.AccountKey, &a.Vault, &name, &size,
		&lastSeen, &createdHere, &deletedHere)
	if err != nil {
		return models.Archive{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	a.Name = name.String
	a.Size = size.Int64
	if lastSeen.Valid {
		t := lastSeen.Time.UTC()
		a.LastSeenUpstream = &t
	}
	if createdHere.Valid {
		t := createdHere.Time.UTC()
		a.CreatedHere = &t
	}
	if deletedHere.Valid {
		t := deletedHere.Time.UTC()
		a.DeletedHere = &t
	}

	return a, nil
}
