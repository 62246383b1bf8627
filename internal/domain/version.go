package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ContentVersion is one immutable snapshot of a CMS record, keyed by
// the record's entity name and id. Restoring a version re-saves its
// snapshot as the newest version rather than rewriting history.
type ContentVersion struct {
	ID        uuid.UUID       `json:"id"`
	Entity    string          `json:"entity"`
	EntityID  uuid.UUID       `json:"entity_id"`
	Version   int             `json:"version"`
	Snapshot  json.RawMessage `json:"snapshot"`
	CreatedAt time.Time       `json:"created_at"`
}

// Change classification for a single field between two snapshots.
const (
	ChangeAdded    = "added"
	ChangeRemoved  = "removed"
	ChangeModified = "modified"
)

type FieldChange struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	OldValue any    `json:"old_value,omitempty"`
	NewValue any    `json:"new_value,omitempty"`
}
