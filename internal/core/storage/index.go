package storage

import v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"

// Index maps field values to ascending positions in a snapshot's record slice.
// It holds no copies of the records themselves.
type Index struct {
	ByProduct  map[string][]int
	ByCustomer map[string][]int
}

// BuildIndex builds product and customer indices in a single pass.
func BuildIndex(txns []v1.Transaction) Index {
	ix := Index{
		ByProduct:  make(map[string][]int),
		ByCustomer: make(map[string][]int),
	}
	for pos, t := range txns {
		ix.ByProduct[t.ProductName] = append(ix.ByProduct[t.ProductName], pos)
		ix.ByCustomer[t.CustomerID] = append(ix.ByCustomer[t.CustomerID], pos)
	}
	return ix
}

// Product returns the positions of records with the given product name.
func (ix Index) Product(name string) []int {
	return ix.ByProduct[name]
}

// Customer returns the positions of records for the given customer id.
func (ix Index) Customer(id string) []int {
	return ix.ByCustomer[id]
}

// Pick returns the records at the given positions, in position order.
func Pick(txns []v1.Transaction, positions []int) []v1.Transaction {
	out := make([]v1.Transaction, 0, len(positions))
	for _, pos := range positions {
		out = append(out, txns[pos])
	}
	return out
}
