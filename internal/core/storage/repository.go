package storage

import (
	"context"
	"errors"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
)

var (
	// ErrEmptyDataset is returned by views when the store holds no transactions.
	ErrEmptyDataset = errors.New("no transactions available")

	// ErrInvalidInput marks caller errors (bad payload shape, bad paging arguments).
	ErrInvalidInput = errors.New("invalid input")
)

// InsertResult reports what a batch insert did.
type InsertResult struct {
	Added      int `json:"added" yaml:"added"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	Rejected   int `json:"rejected" yaml:"rejected"`
	Total      int `json:"total_count" yaml:"total_count"`
}

// Page is one window of the insertion-ordered transaction list.
type Page struct {
	Transactions []v1.Transaction `json:"transactions"`
	Total        int              `json:"count"`
	Page         int              `json:"page"`
	PerPage      int              `json:"per_page"`
}

// Snapshot is an immutable view of the store: the records plus the indices
// built from exactly those records. A new snapshot is published on every
// mutation; holders of an older one keep a consistent view.
type Snapshot struct {
	Version      uint64
	Transactions []v1.Transaction
	Index        Index
}

// Len returns the number of transactions in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Transactions)
}

// Empty reports whether the snapshot holds no transactions.
func (s *Snapshot) Empty() bool {
	return s.Len() == 0
}

// TransactionStore defines the interface for holding the deduplicated transaction set.
type TransactionStore interface {
	// InsertBatch appends every transaction whose ID has not been seen before,
	// in order. Duplicates (against the store or earlier in the same batch)
	// and records failing Validate are skipped.
	InsertBatch(ctx context.Context, txns []v1.Transaction) (InsertResult, error)

	// List returns page (1-based) of size perPage in insertion order.
	// Pages past the end are empty, not an error.
	List(ctx context.Context, page, perPage int) (Page, error)

	// Clear drops every transaction and all derived indices. Idempotent.
	// Returns the number of transactions removed.
	Clear(ctx context.Context) (int, error)

	// Snapshot returns the current immutable snapshot.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Ping reports whether the store can serve requests.
	Ping(ctx context.Context) error
}
