package storage

import (
	"testing"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	txns := []v1.Transaction{
		{ID: "T001", CustomerID: "C001", ProductName: "Laptop"},
		{ID: "T002", CustomerID: "C002", ProductName: "Mouse"},
		{ID: "T003", CustomerID: "C001", ProductName: "Keyboard"},
		{ID: "T004", CustomerID: "C003", ProductName: "Laptop"},
	}

	ix := BuildIndex(txns)

	require.Equal(t, []int{0, 3}, ix.Product("Laptop"))
	require.Equal(t, []int{1}, ix.Product("Mouse"))
	require.Nil(t, ix.Product("Monitor"))
	require.Equal(t, []int{0, 2}, ix.Customer("C001"))
	require.Len(t, ix.ByProduct, 3)
	require.Len(t, ix.ByCustomer, 3)

	picked := Pick(txns, ix.Product("Laptop"))
	require.Len(t, picked, 2)
	require.Equal(t, "T001", picked[0].ID)
	require.Equal(t, "T004", picked[1].ID)
}

func TestBuildIndex_Empty(t *testing.T) {
	ix := BuildIndex(nil)
	require.Empty(t, ix.ByProduct)
	require.Empty(t, ix.ByCustomer)
	require.Empty(t, Pick(nil, nil))
}

func TestSnapshot_NilSafe(t *testing.T) {
	var snap *Snapshot
	require.Equal(t, 0, snap.Len())
	require.True(t, snap.Empty())
}
