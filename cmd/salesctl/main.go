// Command salesctl runs the sales aggregation engine offline against batch files.
//
// Usage:
//
//	salesctl report FILE   - ingest a transaction batch and print the aggregation views
//	salesctl orders total FILE - total an order batch per customer
//
// FILE may be .json, .yaml/.yml, .csv or .xlsx.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
