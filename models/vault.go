package models

import "time"

// Vault is a named remote container of archives. Vaults are not persisted
// locally except as the namespace component of Archive records.
type Vault struct {
	Name             string    `json:"name"`
	CreationDate     time.Time `json:"creationDate"`
	NumberOfArchives int64     `json:"numberOfArchives"`
	SizeInBytes      int64     `json:"sizeInBytes"`
}

// Inventory is the decoded output of a completed inventory-retrieval job: a
// lagging snapshot of a vault's contents as of InventoryDate.
type Inventory struct {
	InventoryDate time.Time          `json:"InventoryDate"`
	Archives      []InventoryArchive `json:"ArchiveList"`
}

// InventoryArchive is one entry in an inventory snapshot.
type InventoryArchive struct {
	ID             string    `json:"ArchiveId"`
	Description    string    `json:"ArchiveDescription"`
	CreationDate   time.Time `json:"CreationDate"`
	Size           int64     `json:"Size"`
	SHA256TreeHash string    `json:"SHA256TreeHash,omitempty"`
}
