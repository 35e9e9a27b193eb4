package store

import (
	"context"
	"encoding/json"
	"time"
)

// =============================================================================
// Operation Records
// =============================================================================

// OperationRecord is one resolution served by the API: the resolver kind,
// the request as received, and either the resolved output or the
// validation error it failed with.
type OperationRecord struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Request   json.RawMessage `json:"request"`
	Response  json.RawMessage `json:"response,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListOptions controls pagination for list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// DefaultListOptions returns the default pagination window.
func DefaultListOptions() ListOptions {
	return ListOptions{Limit: 50, Offset: 0}
}

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the persistence interface for operation records.
type Store interface {
	CreateOperation(ctx context.Context, record *OperationRecord) error
	GetOperation(ctx context.Context, id string) (*OperationRecord, error)
	ListOperations(ctx context.Context, opts ListOptions) ([]OperationRecord, error)
	ListOperationsByKind(ctx context.Context, kind string, opts ListOptions) ([]OperationRecord, error)
	CountOperations(ctx context.Context) (int, error)
	Close() error
}
