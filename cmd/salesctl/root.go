package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

type rootOptions struct {
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "salesctl",
		Short:         "Offline tools for the sales aggregation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output != outputJSON && opts.output != outputYAML {
				return fmt.Errorf("invalid --output %q (must be json or yaml)", opts.output)
			}
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "Output format: json or yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every rejected record")

	cmd.AddCommand(newReportCmd(opts), newOrdersCmd(opts))
	return cmd
}

// render writes v to w in the selected format.
func (o *rootOptions) render(w io.Writer, v interface{}) error {
	if o.output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
