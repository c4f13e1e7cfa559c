// Package coerce turns loosely-typed record fields into well-typed values.
//
// Two policies live here and must not be mixed up:
//   - amounts are lenient: anything unusable becomes zero.
//   - identifiers are strict: anything unusable is reported as missing so the
//     caller can exclude the owning record.
//
// None of these functions return errors.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount converts v into a decimal amount.
// Returns decimal.Zero if v is nil, a bool, NaN/Inf, a string that does not
// parse, or a value too large to be represented as a float64.
// JSON numbers unmarshal to float64 in Go; NewFromFloat keeps the shortest exact representation.
func Amount(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(val)
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case int32:
		return decimal.NewFromInt(int64(val))
	case int16:
		return decimal.NewFromInt(int64(val))
	case int8:
		return decimal.NewFromInt(int64(val))
	case uint:
		return decimal.NewFromUint64(uint64(val))
	case uint64:
		return decimal.NewFromUint64(val)
	case uint32:
		return decimal.NewFromInt(int64(val))
	case uint16:
		return decimal.NewFromInt(int64(val))
	case uint8:
		return decimal.NewFromInt(int64(val))
	case decimal.Decimal:
		return finite(val)
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err == nil {
			return finite(d)
		}
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err == nil {
			return finite(d)
		}
	}
	return decimal.Zero
}

// finite returns d, or zero when d has no finite float64 form ("1e400").
func finite(d decimal.Decimal) decimal.Decimal {
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero
	}
	return d
}

// Float64 converts a decimal total to float64, saturating at ±math.MaxFloat64
// instead of overflowing to ±Inf, which JSON cannot encode.
func Float64(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}

// AddQuantity adds two non-negative quantities, saturating at math.MaxInt64.
func AddQuantity(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// CustomerID converts v into an integer customer id.
// ok is false for nil, bools, fractional numbers and strings that are not
// base-10 integers. Callers must drop the record rather than default the id.
func CustomerID(v interface{}) (id int64, ok bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case int32:
		return int64(val), true
	case int16:
		return int64(val), true
	case int8:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint:
		if uint64(val) > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case uint64:
		if val > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case float64:
		return integralFloat(val)
	case float32:
		return integralFloat(float64(val))
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n, true
		}
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return integralFloat(f)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Identifier converts v into a non-empty string identifier.
// Strings are trimmed; integral numbers are formatted in base 10.
func Identifier(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		return s, s != ""
	case json.Number:
		return Identifier(val.String())
	case nil, bool:
		return "", false
	}
	if n, ok := CustomerID(v); ok {
		return strconv.FormatInt(n, 10), true
	}
	return "", false
}

// Quantity converts v into a quantity.
// A missing value defaults to 1; ok is false only when a value is present but
// is not a whole number.
func Quantity(v interface{}) (qty int64, ok bool) {
	if v == nil {
		return 1, true
	}
	if _, isBool := v.(bool); isBool {
		return 0, false
	}
	return CustomerID(v)
}

// String converts v into a display string. nil becomes "".
func String(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	}
	if id, ok := Identifier(v); ok {
		return id
	}
	return ""
}

// AmountField pulls an amount from a record by key. Missing keys yield zero.
func AmountField(data map[string]interface{}, key string) decimal.Decimal {
	if key == "" {
		return decimal.Zero
	}
	return Amount(data[key])
}

// CustomerIDField pulls a strict integer customer id from a record by key.
func CustomerIDField(data map[string]interface{}, key string) (int64, bool) {
	v, exists := data[key]
	if !exists {
		return 0, false
	}
	return CustomerID(v)
}

func integralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
