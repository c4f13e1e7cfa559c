package v1

import (
	"fmt"
	"math"

	"github.com/aevon-lab/sales-analytics/internal/core/coerce"
)

// Record field names accepted on upload.
const (
	FieldTransactionID = "transaction_id"
	FieldCustomerID    = "customer_id"
	FieldCustomerName  = "customer_name"
	FieldProductName   = "product_name"
	FieldAmount        = "amount"
	FieldQuantity      = "quantity"
	FieldDate          = "date"
	FieldOrderID       = "order_id"
)

// Transaction is one sales record held by the store.
// Once stored it is never modified; Clear is the only way to drop it.
type Transaction struct {
	// ID is the client-supplied identifier. It is the only key used for
	// duplicate suppression; two records with the same ID are the same record
	// no matter how the other fields differ.
	ID string `json:"transaction_id" yaml:"transaction_id"`

	CustomerID   string `json:"customer_id" yaml:"customer_id"`
	CustomerName string `json:"customer_name" yaml:"customer_name"`
	ProductName  string `json:"product_name" yaml:"product_name"`

	// Amount is the monetary value of the sale. Never negative.
	Amount float64 `json:"amount" yaml:"amount"`

	// Quantity is the number of units sold. Always >= 1.
	Quantity int64 `json:"quantity" yaml:"quantity"`

	// Date is an ISO-8601 calendar date (YYYY-MM-DD). Range filters compare it
	// lexically, which matches chronological order for this format.
	Date string `json:"date" yaml:"date"`
}

// Validate ensures a transaction satisfies the store invariants.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction_id is required")
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("amount must be a finite number")
	}
	if t.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if t.Quantity < 1 {
		return fmt.Errorf("quantity must be >= 1")
	}
	return nil
}

// TransactionFromRecord converts one loosely-typed upload record into a Transaction.
// Amount is lenient (unparseable or missing -> 0) and quantity defaults to 1.
// A record is rejected only when it has no usable transaction_id or when the
// coerced values break Validate.
func TransactionFromRecord(record map[string]interface{}) (Transaction, error) {
	id, ok := coerce.Identifier(record[FieldTransactionID])
	if !ok {
		return Transaction{}, fmt.Errorf("transaction_id is required")
	}

	qty, ok := coerce.Quantity(record[FieldQuantity])
	if !ok {
		return Transaction{}, fmt.Errorf("quantity must be a whole number")
	}

	customerID, _ := coerce.Identifier(record[FieldCustomerID])

	txn := Transaction{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: coerce.String(record[FieldCustomerName]),
		ProductName:  coerce.String(record[FieldProductName]),
		Amount:       coerce.Amount(record[FieldAmount]).InexactFloat64(),
		Quantity:     qty,
		Date:         coerce.String(record[FieldDate]),
	}
	if err := txn.Validate(); err != nil {
		return Transaction{}, err
	}
	return txn, nil
}
