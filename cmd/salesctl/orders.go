package main

import (
	"log/slog"

	"github.com/aevon-lab/sales-analytics/internal/batchfile"
	"github.com/aevon-lab/sales-analytics/internal/orders"
	"github.com/spf13/cobra"
)

func newOrdersCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Order batch tools",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "total FILE",
		Short: "Total order amounts per customer id",
		Long: `Reads a batch of orders (order_id, customer_id, amount) and prints the total
amount per integer customer id. Orders without a usable customer id are skipped;
missing or unparseable amounts count as zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := batchfile.Read(args[0], "orders")
			if err != nil {
				return err
			}

			result := orders.Aggregate(batch.Records)
			result.Skipped += batch.Invalid

			slog.Debug("Totalled orders", "file", args[0], "orders", len(batch.Records)+batch.Invalid, "skipped", result.Skipped)
			return root.render(cmd.OutOrStdout(), result)
		},
	})

	return cmd
}
