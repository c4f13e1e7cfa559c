package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aevon-lab/sales-analytics/internal/orders"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const transactionsJSON = `{"transactions": [
	{"transaction_id": "T001", "customer_id": "C001", "customer_name": "John Doe", "product_name": "Laptop", "amount": 1200, "quantity": 1, "date": "2026-01-15"},
	{"transaction_id": "T002", "customer_id": "C002", "customer_name": "Jane Smith", "product_name": "Mouse", "amount": 25, "quantity": 2, "date": "2026-01-16"},
	{"transaction_id": "T003", "customer_id": "C001", "customer_name": "John Doe", "product_name": "Keyboard", "amount": 75, "quantity": 1, "date": "2026-01-17"},
	{"transaction_id": "T004", "customer_id": "C003", "customer_name": "Bob Johnson", "product_name": "Laptop", "amount": 1200, "quantity": 1, "date": "2026-01-18"},
	{"transaction_id": "T005", "customer_id": "C002", "customer_name": "Jane Smith", "product_name": "Monitor", "amount": 300, "quantity": 1, "date": "2026-01-19"},
	{"transaction_id": "T001", "customer_id": "C009", "product_name": "Laptop", "amount": 1, "quantity": 1, "date": "2026-01-20"},
	{"customer_id": "C009", "product_name": "Laptop", "amount": 1, "quantity": 1},
	"not an object"
]}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReport_JSON(t *testing.T) {
	out, err := run(t, "report", writeFile(t, "batch.json", transactionsJSON), "--limit", "2")
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	require.Equal(t, 5, report.Ingested.Added)
	require.Equal(t, 1, report.Ingested.Duplicates)
	require.Equal(t, 2, report.Ingested.Rejected)
	require.Equal(t, 5, report.Ingested.Total)

	require.Equal(t, 2800.0, report.Summary.TotalSales)
	require.Equal(t, 5, report.Summary.TotalTransactions)

	require.Equal(t, "Laptop", report.Products[0].ProductName)
	require.Equal(t, 2400.0, report.Products[0].TotalSales)

	require.Len(t, report.TopCustomers, 2)
	require.Equal(t, "C001", report.TopCustomers[0].CustomerID)
	require.Equal(t, 1275.0, report.TopCustomers[0].TotalAmount)

	require.Nil(t, report.Filtered)
}

func TestReport_Filter(t *testing.T) {
	out, err := run(t, "report", writeFile(t, "batch.json", transactionsJSON),
		"--product", "Laptop", "--start", "2026-01-16")
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotNil(t, report.Filtered)
	require.Equal(t, 1, report.Filtered.Count)
	require.Equal(t, "T004", report.Filtered.Transactions[0].ID)
}

func TestReport_CSV(t *testing.T) {
	body := "transaction_id,customer_id,customer_name,product_name,amount,quantity,date\n" +
		"T1,C1,Ann,Pen,2.5,4,2026-02-01\n" +
		"T2,C2,Ben,Pen,1.5,2,2026-02-02\n"

	out, err := run(t, "report", writeFile(t, "batch.csv", body), "-o", "yaml")
	require.NoError(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Equal(t, 2, report.Ingested.Added)
	require.Len(t, report.Products, 1)
	require.Equal(t, 4.0, report.Products[0].TotalSales)
	require.Equal(t, int64(6), report.Products[0].TotalQuantity)
}

func TestReport_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file arg", args: []string{"report"}},
		{name: "unsupported extension", args: []string{"report", writeFile(t, "batch.txt", "x")}},
		{name: "empty batch", args: []string{"report", writeFile(t, "batch.json", `{"transactions": []}`)}},
		{name: "bad date", args: []string{"report", writeFile(t, "batch.json", transactionsJSON), "--start", "01/02/2026"}},
		{name: "bad output", args: []string{"-o", "xml", "report", writeFile(t, "batch.json", transactionsJSON)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.Error(t, err)
		})
	}
}

func TestOrdersTotal(t *testing.T) {
	body := `[
		{"order_id": 1, "customer_id": 100, "amount": 120},
		{"order_id": 2, "customer_id": 101, "amount": "30"},
		{"order_id": 3, "customer_id": 100, "amount": null},
		{"order_id": 4, "customer_id": "101", "amount": "20.5"},
		{"order_id": 5, "customer_id": null, "amount": 500},
		{"order_id": 6, "customer_id": 100, "amount": -10},
		7
	]`

	out, err := run(t, "orders", "total", writeFile(t, "orders.json", body))
	require.NoError(t, err)

	var result orders.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, map[int64]float64{100: 110.0, 101: 50.5}, result.Totals)
	require.Equal(t, 2, result.Skipped)
}

func TestOrdersTotal_YAMLInput(t *testing.T) {
	body := `
orders:
  - {order_id: 1, customer_id: 7, amount: 1.25}
  - {order_id: 2, customer_id: 7, amount: 2.75}
`
	out, err := run(t, "-o", "yaml", "orders", "total", writeFile(t, "orders.yaml", body))
	require.NoError(t, err)

	var result orders.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	require.Equal(t, map[int64]float64{7: 4.0}, result.Totals)
	require.Zero(t, result.Skipped)
}
