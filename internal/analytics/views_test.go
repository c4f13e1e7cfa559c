package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/aevon-lab/sales-analytics/internal/core/storage/memory"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []v1.Transaction {
	return []v1.Transaction{
		{ID: "T001", CustomerID: "C001", CustomerName: "John Doe", ProductName: "Laptop", Amount: 1200, Quantity: 1, Date: "2026-01-15"},
		{ID: "T002", CustomerID: "C002", CustomerName: "Jane Smith", ProductName: "Mouse", Amount: 25, Quantity: 2, Date: "2026-01-16"},
		{ID: "T003", CustomerID: "C001", CustomerName: "John Doe", ProductName: "Keyboard", Amount: 75, Quantity: 1, Date: "2026-01-17"},
		{ID: "T004", CustomerID: "C003", CustomerName: "Bob Johnson", ProductName: "Laptop", Amount: 1200, Quantity: 1, Date: "2026-01-18"},
		{ID: "T005", CustomerID: "C002", CustomerName: "Jane Smith", ProductName: "Monitor", Amount: 300, Quantity: 1, Date: "2026-01-19"},
	}
}

func snapshotOf(t testing.TB, txns []v1.Transaction) *storage.Snapshot {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	_, err := s.InsertBatch(ctx, txns)
	require.NoError(t, err)
	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	return snap
}

func TestProductTotals(t *testing.T) {
	rows, err := ProductTotals(snapshotOf(t, sampleTransactions()))
	require.NoError(t, err)

	require.Equal(t, []ProductTotal{
		{ProductName: "Laptop", TotalSales: 2400, TotalQuantity: 2, TransactionCount: 2},
		{ProductName: "Monitor", TotalSales: 300, TotalQuantity: 1, TransactionCount: 1},
		{ProductName: "Keyboard", TotalSales: 75, TotalQuantity: 1, TransactionCount: 1},
		{ProductName: "Mouse", TotalSales: 25, TotalQuantity: 2, TransactionCount: 1},
	}, rows)
}

func TestProductTotals_TiesKeepFirstSeenOrder(t *testing.T) {
	rows, err := ProductTotals(snapshotOf(t, []v1.Transaction{
		{ID: "1", ProductName: "B", Amount: 10, Quantity: 1},
		{ID: "2", ProductName: "A", Amount: 10, Quantity: 1},
		{ID: "3", ProductName: "C", Amount: 20, Quantity: 1},
	}))
	require.NoError(t, err)
	require.Equal(t, "C", rows[0].ProductName)
	require.Equal(t, "B", rows[1].ProductName)
	require.Equal(t, "A", rows[2].ProductName)
}

func TestProductTotals_DecimalSum(t *testing.T) {
	rows, err := ProductTotals(snapshotOf(t, []v1.Transaction{
		{ID: "1", ProductName: "Pen", Amount: 0.1, Quantity: 1},
		{ID: "2", ProductName: "Pen", Amount: 0.2, Quantity: 1},
	}))
	require.NoError(t, err)
	require.Equal(t, 0.3, rows[0].TotalSales)
}

func TestTopCustomers(t *testing.T) {
	snap := snapshotOf(t, sampleTransactions())

	rows, err := TopCustomers(snap, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, CustomerTotal{CustomerID: "C001", CustomerName: "John Doe", TotalAmount: 1275, TotalTransactions: 2}, rows[0])
	require.Equal(t, "C003", rows[1].CustomerID)
	require.Equal(t, 1200.0, rows[1].TotalAmount)
	require.Equal(t, "C002", rows[2].CustomerID)
	require.Equal(t, 325.0, rows[2].TotalAmount)

	for limit := 1; limit <= 4; limit++ {
		rows, err := TopCustomers(snap, limit)
		require.NoError(t, err)
		require.Len(t, rows, min(limit, 3))
		for i := 1; i < len(rows); i++ {
			require.GreaterOrEqual(t, rows[i-1].TotalAmount, rows[i].TotalAmount)
		}
	}

	_, err = TopCustomers(snap, 0)
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestCustomerRanking_DisplayName(t *testing.T) {
	rows, err := CustomerRanking(snapshotOf(t, []v1.Transaction{
		{ID: "1", CustomerID: "C1", CustomerName: "Old Name", Amount: 5, Quantity: 1},
		{ID: "2", CustomerID: "C1", CustomerName: "New Name", Amount: 5, Quantity: 1},
		{ID: "3", CustomerID: "C1", Amount: 5, Quantity: 1},
		{ID: "4", CustomerID: "C2", Amount: 1, Quantity: 1},
	}))
	require.NoError(t, err)
	require.Equal(t, "New Name", rows[0].CustomerName)
	require.Equal(t, "Customer_C2", rows[1].CustomerName)
}

func TestFilter(t *testing.T) {
	snap := snapshotOf(t, sampleTransactions())

	tests := []struct {
		name    string
		params  FilterParams
		wantIDs []string
		wantErr error
	}{
		{name: "no predicates", params: FilterParams{}, wantIDs: []string{"T001", "T002", "T003", "T004", "T005"}},
		{name: "product only uses index", params: FilterParams{ProductName: "Laptop"}, wantIDs: []string{"T001", "T004"}},
		{name: "unknown product", params: FilterParams{ProductName: "Tablet"}, wantIDs: []string{}},
		{name: "inclusive date range", params: FilterParams{StartDate: "2026-01-16", EndDate: "2026-01-18"}, wantIDs: []string{"T002", "T003", "T004"}},
		{name: "start only", params: FilterParams{StartDate: "2026-01-19"}, wantIDs: []string{"T005"}},
		{name: "end only", params: FilterParams{EndDate: "2026-01-15"}, wantIDs: []string{"T001"}},
		{name: "range and product", params: FilterParams{StartDate: "2026-01-16", ProductName: "Laptop"}, wantIDs: []string{"T004"}},
		{name: "inverted range", params: FilterParams{StartDate: "2026-01-19", EndDate: "2026-01-15"}, wantIDs: []string{}},
		{name: "bad start date", params: FilterParams{StartDate: "01/15/2026"}, wantErr: ErrInvalidQuery},
		{name: "bad end date", params: FilterParams{EndDate: "2026-13-01"}, wantErr: ErrInvalidQuery},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Filter(snap, tc.params)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, txn := range got {
				ids = append(ids, txn.ID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize(snapshotOf(t, sampleTransactions()))
	require.NoError(t, err)

	require.Equal(t, &Summary{
		TotalSales:         2800,
		TotalTransactions:  5,
		UniqueCustomers:    3,
		UniqueProducts:     4,
		AverageTransaction: 560,
		MinTransaction:     25,
		MaxTransaction:     1200,
	}, summary)
}

func TestViews_HugeTotalsStayFinite(t *testing.T) {
	snap := snapshotOf(t, []v1.Transaction{
		{ID: "1", CustomerID: "C1", ProductName: "Yacht", Amount: 1e308, Quantity: math.MaxInt64 - 1},
		{ID: "2", CustomerID: "C1", ProductName: "Yacht", Amount: 1e308, Quantity: 2},
	})

	products, err := ProductTotals(snap)
	require.NoError(t, err)
	require.Equal(t, math.MaxFloat64, products[0].TotalSales)
	require.Equal(t, int64(math.MaxInt64), products[0].TotalQuantity)

	customers, err := CustomerRanking(snap)
	require.NoError(t, err)
	require.Equal(t, math.MaxFloat64, customers[0].TotalAmount)

	summary, err := Summarize(snap)
	require.NoError(t, err)
	require.Equal(t, math.MaxFloat64, summary.TotalSales)
	require.Equal(t, 1e308, summary.AverageTransaction)
	require.Equal(t, 1e308, summary.MaxTransaction)

	_, err = json.Marshal(products)
	require.NoError(t, err)
	_, err = json.Marshal(summary)
	require.NoError(t, err)
}

func TestViews_OutOfRangeAmountsCannotPoisonStore(t *testing.T) {
	txn, err := v1.TransactionFromRecord(map[string]interface{}{
		"transaction_id": "T1", "customer_id": "C1", "product_name": "Pen", "amount": "1e400",
	})
	require.NoError(t, err)
	require.Zero(t, txn.Amount)

	s := memory.NewStore()
	res, err := s.InsertBatch(context.Background(), []v1.Transaction{
		txn,
		{ID: "T2", CustomerID: "C1", ProductName: "Pen", Amount: math.Inf(1), Quantity: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Added)
	require.Equal(t, 1, res.Rejected)

	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	rows, err := ProductTotals(snap)
	require.NoError(t, err)
	require.Equal(t, 0.0, rows[0].TotalSales)
}

func TestCustomerHistory(t *testing.T) {
	snap := snapshotOf(t, sampleTransactions())

	got, err := CustomerHistory(snap, "C002")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "T002", got[0].ID)
	require.Equal(t, "T005", got[1].ID)

	got, err = CustomerHistory(snap, "C999")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestViews_EmptyDataset(t *testing.T) {
	snap := snapshotOf(t, nil)

	_, err := ProductTotals(snap)
	require.ErrorIs(t, err, storage.ErrEmptyDataset)
	_, err = CustomerRanking(snap)
	require.ErrorIs(t, err, storage.ErrEmptyDataset)
	_, err = Filter(snap, FilterParams{})
	require.ErrorIs(t, err, storage.ErrEmptyDataset)
	_, err = Summarize(snap)
	require.ErrorIs(t, err, storage.ErrEmptyDataset)
	_, err = CustomerHistory(snap, "C001")
	require.ErrorIs(t, err, storage.ErrEmptyDataset)
}

func BenchmarkViews(b *testing.B) {
	txns := make([]v1.Transaction, 0, 10000)
	for i := 0; i < 10000; i++ {
		txns = append(txns, v1.Transaction{
			ID:          fmt.Sprintf("T%06d", i),
			CustomerID:  fmt.Sprintf("C%04d", i%100),
			ProductName: fmt.Sprintf("Product %d", i%50),
			Amount:      100 + float64(i%1000),
			Quantity:    int64(1 + i%5),
			Date:        fmt.Sprintf("2026-01-%02d", i%28+1),
		})
	}
	snap := snapshotOf(b, txns)

	b.Run("ProductTotals", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := ProductTotals(snap); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("TopCustomers", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := TopCustomers(snap, 10); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("FilterByProduct", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Filter(snap, FilterParams{ProductName: "Product 7"}); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("Summarize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Summarize(snap); err != nil {
				b.Fatal(err)
			}
		}
	})
}
