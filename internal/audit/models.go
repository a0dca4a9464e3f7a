// Package audit records what changed on every mutating entity operation.
// Records are append-only: this subsystem creates them exactly once, never
// updates or deletes them, and leaves retention to whoever owns the store.
package audit

import (
	"time"

	"github.com/google/uuid"

	"trastienda/internal/diff"
)

// Action classifies the mutation a record describes.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Actor is who performed the mutation. Nil on a record means the mutation
// was system-initiated or the actor was unknown at capture time.
type Actor struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// ClientContext carries request metadata captured upstream by the transport
// middleware. Both fields may be empty for non-HTTP callers.
type ClientContext struct {
	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// Record is one immutable audit trail entry. Many records reference one
// entity; deleting the entity does not cascade to its trail.
type Record struct {
	ID         uuid.UUID     `json:"id"`
	EntityType string        `json:"entityType"`
	EntityID   int64         `json:"entityId"`
	Action     Action        `json:"action"`
	Diffs      []diff.Entry  `json:"diffs"`
	Actor      *Actor        `json:"actor,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
	Client     ClientContext `json:"clientContext"`
}

// LastUpdate is the derived "last touched" view of an entity's trail.
type LastUpdate struct {
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy *Actor    `json:"updatedBy,omitempty"`
}
