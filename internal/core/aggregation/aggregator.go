package aggregation

import (
	"github.com/shopspring/decimal"
)

// Supported reduce operators.
const (
	OpCount = "count"
	OpSum   = "sum"
	OpMin   = "min"
	OpMax   = "max"
)

// Reducer defines the fold semantics of one operator over transaction amounts.
type Reducer interface {
	// Initial returns the aggregate after the first amount seen for a key.
	// count -> 1; sum/min/max -> the amount itself.
	Initial(incoming decimal.Decimal) decimal.Decimal

	// Apply folds an incoming amount into an existing aggregate.
	Apply(current, incoming decimal.Decimal) decimal.Decimal
}

// Reducers is the registry of supported operators.
var Reducers = map[string]Reducer{
	OpCount: countReducer{},
	OpSum:   sumReducer{},
	OpMin:   minReducer{},
	OpMax:   maxReducer{},
}

// ValidOperator reports whether op is a registered operator.
func ValidOperator(op string) bool {
	_, ok := Reducers[op]
	return ok
}

type countReducer struct{}

func (countReducer) Initial(_ decimal.Decimal) decimal.Decimal    { return decimal.NewFromInt(1) }
func (countReducer) Apply(cur, _ decimal.Decimal) decimal.Decimal { return cur.Add(decimal.NewFromInt(1)) }

type sumReducer struct{}

func (sumReducer) Initial(v decimal.Decimal) decimal.Decimal      { return v }
func (sumReducer) Apply(cur, inc decimal.Decimal) decimal.Decimal { return cur.Add(inc) }

type minReducer struct{}

func (minReducer) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (minReducer) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.LessThan(cur) {
		return inc
	}
	return cur
}

type maxReducer struct{}

func (maxReducer) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (maxReducer) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.GreaterThan(cur) {
		return inc
	}
	return cur
}

// Accumulator runs a fixed set of reducers over a stream of amounts.
// The zero value is not usable; build one with NewAccumulator.
type Accumulator struct {
	ops    []string
	values map[string]decimal.Decimal
	count  int64
}

// NewAccumulator creates an accumulator for the given operators.
// Unknown operators are ignored.
func NewAccumulator(ops ...string) *Accumulator {
	known := make([]string, 0, len(ops))
	for _, op := range ops {
		if ValidOperator(op) {
			known = append(known, op)
		}
	}
	return &Accumulator{
		ops:    known,
		values: make(map[string]decimal.Decimal, len(known)),
	}
}

// Add folds one amount into every operator.
func (a *Accumulator) Add(amount decimal.Decimal) {
	for _, op := range a.ops {
		r := Reducers[op]
		if a.count == 0 {
			a.values[op] = r.Initial(amount)
			continue
		}
		a.values[op] = r.Apply(a.values[op], amount)
	}
	a.count++
}

// Value returns the current aggregate for op, or zero if nothing was added
// or op is not tracked.
func (a *Accumulator) Value(op string) decimal.Decimal {
	if v, ok := a.values[op]; ok {
		return v
	}
	return decimal.Zero
}

// Count returns how many amounts were folded.
func (a *Accumulator) Count() int64 {
	return a.count
}

// Mean returns sum/count, defined as zero when nothing was added.
// Requires OpSum to be tracked.
func (a *Accumulator) Mean() decimal.Decimal {
	if a.count == 0 {
		return decimal.Zero
	}
	return a.Value(OpSum).Div(decimal.NewFromInt(a.count))
}
