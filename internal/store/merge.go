package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// mergeTx applies one inventory snapshot inside a single transaction.
type mergeTx struct {
	tx *sql.Tx
	r  *cacheRepository
}

func (r *cacheRepository) BeginMerge(ctx context.Context) (MergeTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	return &mergeTx{tx: tx, r: r}, nil
}

func (m *mergeTx) Commit() error {
	if err := m.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (m *mergeTx) Rollback() error {
	return m.tx.Rollback()
}

// lastSeenFrom computes the lag-tolerant evidence bound for one sighting.
//
// Inventories don't get recreated unless the vault has changed, so the
// snapshot's own InventoryDate can fall arbitrarily far behind. An archive
// appearing in any retrieved inventory is therefore taken to have existed at
// some point no later than the inventory job's creation minus InventoryLag:
// a date prior to the job request is preferred over the job completion date
// because an archive could be deleted while an inventory job is in progress
// and still appear in its output. Claiming the archive existed slightly
// before it was actually created is harmless; better too far back in time
// than too far ahead.
func lastSeenFrom(s Sighting) time.Time {
	lastSeen := s.UpstreamInventoryDate
	if backdated := s.JobCreationDate.Add(-InventoryLag); backdated.After(lastSeen) {
		lastSeen = backdated
	}
	return lastSeen
}

func (m *mergeTx) MergeSighting(ctx context.Context, s Sighting, fix bool) error {
	lastSeen := lastSeenFrom(s)

	// Tombstoned records are included: a sighting of a locally deleted
	// archive is exactly the staleness case the tombstone checks cover.
	matches, err := m.r.selectArchives(ctx, m.tx, sq.Eq{
		"account_key": m.r.accountKey,
		"vault":       s.Vault,
		"id":          s.ID,
	}, "id")
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		return m.insertSighting(ctx, s, lastSeen)
	}

	archive := matches[0]
	log := m.r.logger

	name := archive.Name
	switch {
	case archive.Name == "":
		name = s.Name
	case archive.Name != s.Name:
		if fix {
			log.Warn().
				Str("archive_id", archive.ID).
				Str("old_name", archive.Name).
				Str("new_name", s.Name).
				Msg("archive appears to have changed name (fixed)")
			name = s.Name
		} else {
			log.Warn().
				Str("archive_id", archive.ID).
				Str("old_name", archive.Name).
				Str("new_name", s.Name).
				Msg("archive appears to have changed name")
		}
	}

	size := archive.Size
	switch {
	case archive.Size == 0:
		size = s.Size
	case archive.Size != s.Size:
		if fix {
			log.Warn().
				Str("archive_id", archive.ID).
				Int64("old_size", archive.Size).
				Int64("new_size", s.Size).
				Msg("archive appears to have changed size (fixed)")
			size = s.Size
		} else {
			log.Warn().
				Str("archive_id", archive.ID).
				Int64("old_size", archive.Size).
				Int64("new_size", s.Size).
				Msg("archive appears to have changed size")
		}
	}

	if archive.Deleted() {
		if archive.DeletedHere.Before(s.UpstreamInventoryDate) {
			log.Warn().
				Str("archive", archive.Ref(false)).
				Msg("archive marked deleted but still present upstream")
		} else {
			log.Info().
				Str("archive", archive.Ref(false)).
				Msg("archive deletion not yet in inventory")
		}
	}

	// LastSeenUpstream advances monotonically; an older inventory replayed
	// later must never move the evidence backwards.
	if archive.LastSeenUpstream != nil && archive.LastSeenUpstream.After(lastSeen) {
		lastSeen = *archive.LastSeenUpstream
	}

	query, args, err := m.r.db.builder.
		Update("archives").
		Set("name", name).
		Set("size", size).
		Set("last_seen_upstream", lastSeen).
		Where(sq.Eq{"account_key": m.r.accountKey, "vault": s.Vault, "id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = m.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (m *mergeTx) insertSighting(ctx context.Context, s Sighting, lastSeen time.Time) error {
	query, args, err := m.r.db.builder.
		Insert("archives").
		Columns("id", "account_key", "vault", "name", "size", "last_seen_upstream", "created_here").
		Values(s.ID, m.r.accountKey, s.Vault, s.Name, s.Size, lastSeen, m.r.now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = m.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (m *mergeTx) FinalizeInventory(ctx context.Context, vault string, inventoryDate time.Time, seenIDs []string, fix bool) error {
	all, err := m.r.selectArchives(ctx, m.tx, sq.Eq{
		"account_key": m.r.accountKey,
		"vault":       vault,
	}, "id")
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(seenIDs))
	for _, id := range seenIDs {
		seen[id] = struct{}{}
	}

	log := m.r.logger
	for _, archive := range all {
		if _, ok := seen[archive.ID]; ok {
			continue
		}

		switch {
		case archive.Deleted() && archive.DeletedHere.Before(inventoryDate):
			// Deletion confirmed upstream.
			if err := m.purge(ctx, vault, archive.ID); err != nil {
				return err
			}
			log.Info().
				Str("archive", archive.Ref(false)).
				Msg("deleted archive has left inventory; removed from cache")

		case !archive.Deleted() && (archive.LastSeenUpstream != nil ||
			(archive.CreatedHere != nil && archive.CreatedHere.Before(inventoryDate.Add(-InventoryLag)))):
			if fix {
				if err := m.purge(ctx, vault, archive.ID); err != nil {
					return err
				}
				log.Warn().
					Str("archive", archive.Ref(false)).
					Msg("archive disappeared (removed from cache)")
			} else {
				log.Warn().
					Str("archive", archive.Ref(false)).
					Msg("archive disappeared")
			}

		default:
			log.Info().
				Str("archive", archive.Ref(false)).
				Msg("new archive not yet in inventory")
		}
	}

	return nil
}

func (m *mergeTx) purge(ctx context.Context, vault, id string) error {
	query, args, err := m.r.db.builder.
		Delete("archives").
		Where(sq.Eq{"account_key": m.r.accountKey, "vault": vault, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = m.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
