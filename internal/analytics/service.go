package analytics

import (
	"context"
	"fmt"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
)

const (
	viewProducts  = "products"
	viewCustomers = "customers"
	viewSummary   = "summary"
)

// Options tune the analytics read path.
type Options struct {
	DefaultTopLimit int
	MaxTopLimit     int
	CacheEnabled    bool
}

// Service implements the aggregation views over the current store snapshot.
// Every call reads exactly one snapshot, so a view never mixes records from
// before and after a concurrent upload.
type Service struct {
	store           storage.TransactionStore
	cache           *viewCache
	defaultTopLimit int
	maxTopLimit     int
}

// NewService creates a new analytics service.
func NewService(store storage.TransactionStore, opts Options) *Service {
	if opts.DefaultTopLimit < 1 {
		opts.DefaultTopLimit = 10
	}
	if opts.MaxTopLimit < opts.DefaultTopLimit {
		opts.MaxTopLimit = opts.DefaultTopLimit
	}

	return &Service{
		store:           store,
		cache:           newViewCache(opts.CacheEnabled),
		defaultTopLimit: opts.DefaultTopLimit,
		maxTopLimit:     opts.MaxTopLimit,
	}
}

// ProductTotals returns per-product totals, best sellers first.
func (s *Service) ProductTotals(ctx context.Context) ([]ProductTotal, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	v, err := s.cache.load(snap.Version, viewProducts, func() (interface{}, error) {
		return ProductTotals(snap)
	})
	if err != nil {
		return nil, err
	}
	return v.([]ProductTotal), nil
}

// TopCustomers returns up to limit customers ranked by total amount.
// A limit of 0 means the configured default; larger limits are capped.
func (s *Service) TopCustomers(ctx context.Context, limit int) ([]CustomerTotal, error) {
	if limit == 0 {
		limit = s.defaultTopLimit
	}
	if limit < 1 {
		return nil, invalidQueryf("limit must be >= 1, got %d", limit)
	}
	if limit > s.maxTopLimit {
		limit = s.maxTopLimit
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	v, err := s.cache.load(snap.Version, viewCustomers, func() (interface{}, error) {
		return CustomerRanking(snap)
	})
	if err != nil {
		return nil, err
	}

	ranked := v.([]CustomerTotal)
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Filter returns records matching params.
func (s *Service) Filter(ctx context.Context, params FilterParams) ([]v1.Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(snap, params)
}

// Summary returns store-wide metrics.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	v, err := s.cache.load(snap.Version, viewSummary, func() (interface{}, error) {
		return Summarize(snap)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Summary), nil
}

// CustomerHistory returns one customer's transactions.
func (s *Service) CustomerHistory(ctx context.Context, customerID string) ([]v1.Transaction, error) {
	if customerID == "" {
		return nil, invalidQueryf("customer_id is required")
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return CustomerHistory(snap, customerID)
}

func (s *Service) snapshot(ctx context.Context) (*storage.Snapshot, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Empty() {
		return nil, storage.ErrEmptyDataset
	}
	return snap, nil
}
