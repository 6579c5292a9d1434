package models

import (
	"strings"
	"time"
)

// Archive is the cache's record of a single remote archive. It is the only
// persistent model in the application: everything else (vaults, jobs,
// inventories) lives on the remote side and is re-fetched on demand.
type Archive struct {
	// ID is the opaque identifier assigned by the remote service. Immutable
	// once assigned; primary key within an (AccountKey, Vault) pair.
	ID string

	// Name is the user-facing label. May be empty (unnamed archive), and
	// names are not unique within a vault.
	Name string

	// Size is the archive length in bytes. Filled in at upload time or on
	// the first inventory sighting; zero until then.
	Size int64

	// Vault is the remote container holding this archive.
	Vault string

	// AccountKey namespaces the record so one cache file can serve several
	// remote accounts without collision. It is an explicit identity value
	// passed in by the caller, never discovered from ambient credentials.
	AccountKey string

	// LastSeenUpstream is the most recent point in time at which the archive
	// is known to have existed upstream, derived from inventory evidence
	// only. Remote-clock semantics. Nil until the first inventory sighting.
	LastSeenUpstream *time.Time

	// CreatedHere is set when this client created the record itself, right
	// after a successful upload. Local clock.
	CreatedHere *time.Time

	// DeletedHere marks the record as locally tombstoned: this client issued
	// a delete that inventory evidence has not yet confirmed. The record is
	// purged once an inventory generated after DeletedHere omits it.
	DeletedHere *time.Time
}

// Deleted reports whether the record is locally tombstoned.
func (a Archive) Deleted() bool {
	return a.DeletedHere != nil
}

// LastSeen returns LastSeenUpstream when set, otherwise CreatedHere. The zero
// time means the record carries no evidence at all, which should not happen
// for a stored record.
func (a Archive) LastSeen() time.Time {
	if a.LastSeenUpstream != nil {
		return *a.LastSeenUpstream
	}
	if a.CreatedHere != nil {
		return *a.CreatedHere
	}
	return time.Time{}
}

// Ref returns a reference string that resolves back to this archive.
//
// A plain name is returned as-is unless it would be mistaken for prefixed
// reference syntax on re-input, in which case it is disambiguated with an
// explicit "name:" prefix. When forceID is set, or the archive has no name,
// the id form is used. Names containing a colon elsewhere are not guaranteed
// to round-trip; that is a documented limitation of the reference syntax.
func (a Archive) Ref(forceID bool) string {
	if a.Name != "" && !forceID {
		if strings.HasPrefix(a.Name, "name:") || strings.HasPrefix(a.Name, "id:") {
			return "name:" + a.Name
		}
		return a.Name
	}
	return "id:" + a.ID
}
