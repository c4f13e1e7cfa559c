package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
)

// Store implements storage.TransactionStore in process memory.
//
// Writers serialize on mu and publish a fresh storage.Snapshot (records +
// rebuilt indices) through an atomic pointer. Readers never take the lock;
// they load whatever snapshot is current and keep using it even if a writer
// publishes a newer one meanwhile.
type Store struct {
	mu      sync.Mutex
	seen    map[string]struct{} // guarded by mu
	current atomic.Pointer[storage.Snapshot]
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{seen: make(map[string]struct{})}
	s.current.Store(emptySnapshot(0))
	return s
}

func emptySnapshot(version uint64) *storage.Snapshot {
	return &storage.Snapshot{
		Version: version,
		Index:   storage.BuildIndex(nil),
	}
}

// InsertBatch appends unseen transactions and rebuilds the indices once per batch.
func (s *Store) InsertBatch(ctx context.Context, txns []v1.Transaction) (storage.InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return storage.InsertResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	result := storage.InsertResult{}

	fresh := make([]v1.Transaction, 0, len(txns))
	for _, t := range txns {
		if err := t.Validate(); err != nil {
			result.Rejected++
			continue
		}
		if _, dup := s.seen[t.ID]; dup {
			result.Duplicates++
			continue
		}
		s.seen[t.ID] = struct{}{}
		fresh = append(fresh, t)
	}

	result.Added = len(fresh)
	if len(fresh) == 0 {
		result.Total = prev.Len()
		return result, nil
	}

	records := make([]v1.Transaction, 0, prev.Len()+len(fresh))
	records = append(records, prev.Transactions...)
	records = append(records, fresh...)

	next := &storage.Snapshot{
		Version:      prev.Version + 1,
		Transactions: records,
		Index:        storage.BuildIndex(records),
	}
	s.current.Store(next)
	result.Total = len(records)

	slog.Debug("[Memory] Inserted batch",
		"added", result.Added,
		"duplicates", result.Duplicates,
		"rejected", result.Rejected,
		"total", result.Total,
		"version", next.Version)

	return result, nil
}

// List returns one page of transactions in insertion order.
func (s *Store) List(ctx context.Context, page, perPage int) (storage.Page, error) {
	if err := ctx.Err(); err != nil {
		return storage.Page{}, err
	}
	if page < 1 {
		return storage.Page{}, fmt.Errorf("%w: page must be >= 1", storage.ErrInvalidInput)
	}
	if perPage < 1 {
		return storage.Page{}, fmt.Errorf("%w: per_page must be >= 1", storage.ErrInvalidInput)
	}

	snap := s.current.Load()
	total := snap.Len()

	// Bounds are checked before multiplying so huge page numbers cannot wrap.
	start := total
	if page-1 <= total/perPage {
		start = min((page-1)*perPage, total)
	}
	end := total
	if perPage < total-start {
		end = start + perPage
	}

	out := make([]v1.Transaction, end-start)
	copy(out, snap.Transactions[start:end])

	return storage.Page{
		Transactions: out,
		Total:        total,
		Page:         page,
		PerPage:      perPage,
	}, nil
}

// Clear empties the store. The version keeps increasing so that anything
// keyed on it (view caches) sees the change.
func (s *Store) Clear(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	cleared := prev.Len()

	s.seen = make(map[string]struct{})
	s.current.Store(emptySnapshot(prev.Version + 1))

	slog.Debug("[Memory] Cleared store", "cleared", cleared)
	return cleared, nil
}

// Snapshot returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Snapshot(ctx context.Context) (*storage.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.current.Load(), nil
}

// Ping always succeeds once the store is constructed.
func (s *Store) Ping(_ context.Context) error {
	if s.current.Load() == nil {
		return errors.New("memory store not initialized")
	}
	return nil
}
