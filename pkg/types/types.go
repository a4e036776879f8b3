package types

import (
	"github.com/gofrs/uuid"
)

type (
	// DocumentUIDType is the unique identifier of a knowledge base document.
	DocumentUIDType = uuid.UUID
	// ChunkUIDType is the unique identifier of an embedding chunk.
	ChunkUIDType = uuid.UUID
	// TenantUIDType is the unique identifier of the tenant owning a document.
	TenantUIDType = uuid.UUID
)

// DocumentStatus is the processing lifecycle state of a document.
type DocumentStatus string

const (
	// DocumentStatusPending is the state of a freshly registered document.
	DocumentStatusPending DocumentStatus = "pending"
	// DocumentStatusProcessing is set while the pipeline runs.
	DocumentStatusProcessing DocumentStatus = "processing"
	// DocumentStatusReady means the chunk set is complete and searchable.
	DocumentStatusReady DocumentStatus = "ready"
	// DocumentStatusFailed means the last run failed. The reason is kept in
	// the document metadata under the "error" key.
	DocumentStatusFailed DocumentStatus = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusProcessing, DocumentStatusReady, DocumentStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether s ends a pipeline run.
func (s DocumentStatus) IsTerminal() bool {
	return s == DocumentStatusReady || s == DocumentStatusFailed
}

// CanTransitionTo reports whether a document in status s may move to next.
//
// Any known status can enter processing, since a run may be re-triggered at
// any time. A terminal status is never reached from pending directly. It may
// replace another terminal status when two runs on the same document overlap.
func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	if !s.Valid() {
		return false
	}
	switch next {
	case DocumentStatusProcessing:
		return true
	case DocumentStatusReady, DocumentStatusFailed:
		return s != DocumentStatusPending
	}
	return false
}
