package main

import (
	"context"
	"log/slog"

	"github.com/aevon-lab/sales-analytics/internal/analytics"
	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/batchfile"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/aevon-lab/sales-analytics/internal/core/storage/memory"
	"github.com/spf13/cobra"
)

// Report is everything the report command prints.
type Report struct {
	Ingested     storage.InsertResult            `json:"ingested" yaml:"ingested"`
	Summary      *analytics.Summary              `json:"summary" yaml:"summary"`
	Products     []analytics.ProductTotal        `json:"products" yaml:"products"`
	TopCustomers []analytics.CustomerTotal       `json:"top_customers" yaml:"top_customers"`
	Filtered     *analytics.TransactionsResponse `json:"filtered,omitempty" yaml:"filtered,omitempty"`
}

type reportOptions struct {
	limit  int
	filter analytics.FilterParams
}

func newReportCmd(root *rootOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "Ingest a transaction batch and print the aggregation views",
		Long: `Loads a transaction batch into an in-memory store with the same validation and
duplicate suppression as the HTTP upload, then prints the summary, per-product
totals and top customers. Passing any of --product, --start or --end adds the
filtered transaction list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildReport(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return root.render(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Number of top customers to list")
	cmd.Flags().StringVar(&opts.filter.ProductName, "product", "", "Filter: exact product name")
	cmd.Flags().StringVar(&opts.filter.StartDate, "start", "", "Filter: first date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&opts.filter.EndDate, "end", "", "Filter: last date (YYYY-MM-DD, inclusive)")

	return cmd
}

func buildReport(ctx context.Context, path string, opts *reportOptions) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := opts.filter.Validate(); err != nil {
		return nil, err
	}

	batch, err := batchfile.Read(path, "transactions")
	if err != nil {
		return nil, err
	}

	txns := make([]v1.Transaction, 0, len(batch.Records))
	rejected := batch.Invalid
	for i, record := range batch.Records {
		txn, err := v1.TransactionFromRecord(record)
		if err != nil {
			slog.Debug("Rejected transaction record", "index", i, "error", err)
			rejected++
			continue
		}
		txns = append(txns, txn)
	}

	store := memory.NewStore()
	ingested, err := store.InsertBatch(ctx, txns)
	if err != nil {
		return nil, err
	}
	ingested.Rejected += rejected

	svc := analytics.NewService(store, analytics.Options{DefaultTopLimit: opts.limit, MaxTopLimit: opts.limit})

	report := &Report{Ingested: ingested}
	if report.Summary, err = svc.Summary(ctx); err != nil {
		return nil, err
	}
	if report.Products, err = svc.ProductTotals(ctx); err != nil {
		return nil, err
	}
	if report.TopCustomers, err = svc.TopCustomers(ctx, opts.limit); err != nil {
		return nil, err
	}

	if opts.filter != (analytics.FilterParams{}) {
		filtered, err := svc.Filter(ctx, opts.filter)
		if err != nil {
			return nil, err
		}
		report.Filtered = &analytics.TransactionsResponse{Transactions: filtered, Count: len(filtered)}
	}

	return report, nil
}
