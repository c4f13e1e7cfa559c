package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	coreagg "github.com/aevon-lab/sales-analytics/internal/core/aggregation"
	"github.com/aevon-lab/sales-analytics/internal/core/coerce"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/shopspring/decimal"
)

// DateLayout is the accepted format for filter bounds.
const DateLayout = "2006-01-02"

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid analytics query")

// ProductTotals sums amount and quantity per product name in one pass.
// Rows are ordered by total sales descending; equal totals keep first-seen order.
func ProductTotals(snap *storage.Snapshot) ([]ProductTotal, error) {
	if snap.Empty() {
		return nil, storage.ErrEmptyDataset
	}

	type acc struct {
		sales    decimal.Decimal
		quantity int64
		count    int
	}

	order := make([]string, 0, len(snap.Index.ByProduct))
	stats := make(map[string]*acc, len(snap.Index.ByProduct))
	for _, t := range snap.Transactions {
		a, ok := stats[t.ProductName]
		if !ok {
			a = &acc{}
			stats[t.ProductName] = a
			order = append(order, t.ProductName)
		}
		a.sales = a.sales.Add(decimal.NewFromFloat(t.Amount))
		a.quantity = coerce.AddQuantity(a.quantity, t.Quantity)
		a.count++
	}

	sums := make([]decimal.Decimal, len(order))
	rows := make([]ProductTotal, len(order))
	for i, name := range order {
		a := stats[name]
		sums[i] = a.sales
		rows[i] = ProductTotal{
			ProductName:      name,
			TotalSales:       coerce.Float64(a.sales),
			TotalQuantity:    a.quantity,
			TransactionCount: a.count,
		}
	}

	sortDescending(rows, sums)
	return rows, nil
}

// CustomerRanking aggregates every customer, ordered by total amount descending
// with first-seen order breaking ties. The display name is the last non-empty
// name seen for the customer, or Customer_<id> when none was ever given.
func CustomerRanking(snap *storage.Snapshot) ([]CustomerTotal, error) {
	if snap.Empty() {
		return nil, storage.ErrEmptyDataset
	}

	type acc struct {
		amount decimal.Decimal
		count  int
		name   string
	}

	order := make([]string, 0, len(snap.Index.ByCustomer))
	stats := make(map[string]*acc, len(snap.Index.ByCustomer))
	for _, t := range snap.Transactions {
		a, ok := stats[t.CustomerID]
		if !ok {
			a = &acc{}
			stats[t.CustomerID] = a
			order = append(order, t.CustomerID)
		}
		a.amount = a.amount.Add(decimal.NewFromFloat(t.Amount))
		a.count++
		// A record without a name keeps the earlier one rather than
		// resetting it to the Customer_<id> placeholder.
		if t.CustomerName != "" {
			a.name = t.CustomerName
		}
	}

	sums := make([]decimal.Decimal, len(order))
	rows := make([]CustomerTotal, len(order))
	for i, id := range order {
		a := stats[id]
		name := a.name
		if name == "" {
			name = "Customer_" + id
		}
		sums[i] = a.amount
		rows[i] = CustomerTotal{
			CustomerID:        id,
			CustomerName:      name,
			TotalAmount:       coerce.Float64(a.amount),
			TotalTransactions: a.count,
		}
	}

	sortDescending(rows, sums)
	return rows, nil
}

// TopCustomers returns the first limit rows of CustomerRanking.
func TopCustomers(snap *storage.Snapshot, limit int) ([]CustomerTotal, error) {
	if limit < 1 {
		return nil, invalidQueryf("limit must be >= 1, got %d", limit)
	}
	ranked, err := CustomerRanking(snap)
	if err != nil {
		return nil, err
	}
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Filter returns the records matching every non-empty predicate, in insertion
// order. A product-only filter is served from the product index.
func Filter(snap *storage.Snapshot, params FilterParams) ([]v1.Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if snap.Empty() {
		return nil, storage.ErrEmptyDataset
	}

	if params.ProductName != "" && params.StartDate == "" && params.EndDate == "" {
		return storage.Pick(snap.Transactions, snap.Index.Product(params.ProductName)), nil
	}

	out := make([]v1.Transaction, 0)
	for _, t := range snap.Transactions {
		if params.StartDate != "" && t.Date < params.StartDate {
			continue
		}
		if params.EndDate != "" && t.Date > params.EndDate {
			continue
		}
		if params.ProductName != "" && t.ProductName != params.ProductName {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Validate checks that the date bounds, when given, are YYYY-MM-DD.
func (p FilterParams) Validate() error {
	bounds := []struct{ field, value string }{
		{"start_date", p.StartDate},
		{"end_date", p.EndDate},
	}
	for _, b := range bounds {
		if b.value == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, b.value); err != nil {
			return invalidQueryf("%s must be YYYY-MM-DD, got %q", b.field, b.value)
		}
	}
	return nil
}

// Summarize computes store-wide metrics in one pass.
func Summarize(snap *storage.Snapshot) (*Summary, error) {
	if snap.Empty() {
		return nil, storage.ErrEmptyDataset
	}

	acc := coreagg.NewAccumulator(coreagg.OpSum, coreagg.OpMin, coreagg.OpMax)
	customers := make(map[string]struct{}, len(snap.Index.ByCustomer))
	products := make(map[string]struct{}, len(snap.Index.ByProduct))
	for _, t := range snap.Transactions {
		acc.Add(decimal.NewFromFloat(t.Amount))
		customers[t.CustomerID] = struct{}{}
		products[t.ProductName] = struct{}{}
	}

	return &Summary{
		TotalSales:         coerce.Float64(acc.Value(coreagg.OpSum)),
		TotalTransactions:  int(acc.Count()),
		UniqueCustomers:    len(customers),
		UniqueProducts:     len(products),
		AverageTransaction: coerce.Float64(acc.Mean()),
		MinTransaction:     coerce.Float64(acc.Value(coreagg.OpMin)),
		MaxTransaction:     coerce.Float64(acc.Value(coreagg.OpMax)),
	}, nil
}

// CustomerHistory returns one customer's records in insertion order.
// An unknown customer yields an empty slice.
func CustomerHistory(snap *storage.Snapshot, customerID string) ([]v1.Transaction, error) {
	if snap.Empty() {
		return nil, storage.ErrEmptyDataset
	}
	return storage.Pick(snap.Transactions, snap.Index.Customer(customerID)), nil
}

// sortDescending stable-sorts rows by the parallel sums slice, largest first.
func sortDescending[T any](rows []T, sums []decimal.Decimal) {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return sums[idx[a]].GreaterThan(sums[idx[b]])
	})

	sorted := make([]T, len(rows))
	for i, j := range idx {
		sorted[i] = rows[j]
	}
	copy(rows, sorted)
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
