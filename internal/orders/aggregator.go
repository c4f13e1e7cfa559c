// Package orders totals loosely-typed order records per customer.
//
// Customer ids are strict: an order whose customer_id is missing or not an
// integer is skipped. Amounts are lenient: missing or unparseable amounts
// count as zero. Negative amounts are summed like any other. A total beyond
// the float64 range saturates at ±math.MaxFloat64.
package orders

import (
	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/coerce"
	"github.com/shopspring/decimal"
)

// Result is the outcome of totalling a batch of orders.
type Result struct {
	Totals  map[int64]float64 `json:"totals" yaml:"totals"`
	Skipped int               `json:"skipped" yaml:"skipped"`
}

// TotalPerCustomer sums order amounts per integer customer id.
func TotalPerCustomer(orders []map[string]interface{}) map[int64]float64 {
	return Aggregate(orders).Totals
}

// Aggregate is TotalPerCustomer that also reports how many orders were skipped
// for lack of a usable customer id.
func Aggregate(orders []map[string]interface{}) Result {
	sums := make(map[int64]decimal.Decimal)
	skipped := 0

	for _, order := range orders {
		customerID, ok := coerce.CustomerIDField(order, v1.FieldCustomerID)
		if !ok {
			skipped++
			continue
		}
		amount := coerce.AmountField(order, v1.FieldAmount)
		sums[customerID] = sums[customerID].Add(amount)
	}

	totals := make(map[int64]float64, len(sums))
	for id, sum := range sums {
		totals[id] = coerce.Float64(sum)
	}
	return Result{Totals: totals, Skipped: skipped}
}
