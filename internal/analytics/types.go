package analytics

import v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"

// ProductTotal is one row of the per-product sales view.
type ProductTotal struct {
	ProductName      string  `json:"product_name" yaml:"product_name"`
	TotalSales       float64 `json:"total_sales" yaml:"total_sales"`
	TotalQuantity    int64   `json:"total_quantity" yaml:"total_quantity"`
	TransactionCount int     `json:"transaction_count" yaml:"transaction_count"`
}

// CustomerTotal is one row of the top-customers view.
type CustomerTotal struct {
	CustomerID        string  `json:"customer_id" yaml:"customer_id"`
	CustomerName      string  `json:"customer_name" yaml:"customer_name"`
	TotalAmount       float64 `json:"total_amount" yaml:"total_amount"`
	TotalTransactions int     `json:"total_transactions" yaml:"total_transactions"`
}

// Summary holds store-wide metrics.
type Summary struct {
	TotalSales         float64 `json:"total_sales" yaml:"total_sales"`
	TotalTransactions  int     `json:"total_transactions" yaml:"total_transactions"`
	UniqueCustomers    int     `json:"unique_customers" yaml:"unique_customers"`
	UniqueProducts     int     `json:"unique_products" yaml:"unique_products"`
	AverageTransaction float64 `json:"average_transaction" yaml:"average_transaction"`
	MinTransaction     float64 `json:"min_transaction" yaml:"min_transaction"`
	MaxTransaction     float64 `json:"max_transaction" yaml:"max_transaction"`
}

// FilterParams are the optional, conjunctive predicates of the filter view.
// Empty fields are not applied. Dates are inclusive YYYY-MM-DD bounds.
type FilterParams struct {
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	ProductName string `form:"product_name"`
}

// ProductsResponse is the body of GET /sales/per-product.
type ProductsResponse struct {
	Products []ProductTotal `json:"products" yaml:"products"`
}

// TopCustomersResponse is the body of GET /customers/top.
type TopCustomersResponse struct {
	TopCustomers []CustomerTotal `json:"top_customers" yaml:"top_customers"`
}

// TransactionsResponse is the body of the filter view.
type TransactionsResponse struct {
	Transactions []v1.Transaction `json:"transactions" yaml:"transactions"`
	Count        int              `json:"count" yaml:"count"`
}

// CustomerHistoryResponse is the body of GET /customers/:customer_id/transactions.
type CustomerHistoryResponse struct {
	CustomerID   string           `json:"customer_id" yaml:"customer_id"`
	Transactions []v1.Transaction `json:"transactions" yaml:"transactions"`
	Count        int              `json:"count" yaml:"count"`
}
