package main

import (
	"fmt"

	"github.com/nconklindev/exclar/internal/converter"
	"github.com/nconklindev/exclar/internal/logging"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file.xlsx>",
		Short: "Convert a workbook without the terminal UI",
		Long: `Convert reads the "Open Items List" sheet of the workbook and writes
` + converter.OutputName + ` to the output directory. The status line is
printed to stdout; progress is logged to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.Console(cmd.ErrOrStderr(), a.cfg.LogLevel)
			if err != nil {
				return err
			}

			conv := converter.New(converter.Options{
				OutputDir: a.cfg.OutputDir,
				Logger:    &log,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, converter.StatusProcessing)

			result, err := conv.Convert(cmd.Context(), converter.Request{InputFile: args[0]}, nil)
			fmt.Fprintln(out, converter.StatusFor(err))
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Output: %s\n", result.OutputFile)
			fmt.Fprintf(out, "Exceptions: %d\nClarifications: %d\n", result.Exceptions, result.Clarifications)
			return nil
		},
	}
}
