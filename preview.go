package main

import (
	"fmt"
	"io"

	"github.com/nconklindev/exclar/internal/converter"
	"github.com/nconklindev/exclar/internal/logging"
	"github.com/nconklindev/exclar/internal/types"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func newPreviewCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "preview <file.xlsx>",
		Short: "Print the classified remarks without writing a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("invalid format: %s (must be text or yaml)", format)
			}

			log, err := logging.Console(cmd.ErrOrStderr(), a.cfg.LogLevel)
			if err != nil {
				return err
			}

			classified, err := converter.New(converter.Options{Logger: &log}).Preview(cmd.Context(), args[0])
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), converter.StatusFor(err))
				return err
			}

			if format == "yaml" {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(classified); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			}
			writeText(cmd.OutOrStdout(), classified)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func writeText(w io.Writer, c *types.Classified) {
	section := func(label string, entries []types.BulletEntry) {
		fmt.Fprintln(w, label)
		for _, e := range entries {
			fmt.Fprintf(w, "  • %s\n    %s: %s\n", e.Header, e.Type, e.Message)
		}
	}
	section("Exceptions:", c.Exceptions)
	section("Clarifications:", c.Clarifications)
}
