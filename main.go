// Command exclar turns the "Open Items List" sheet of an Excel workbook into
// an Exceptions and Clarifications Word document.
package main

import (
	"fmt"
	"os"

	"github.com/nconklindev/exclar/internal/config"
	"github.com/nconklindev/exclar/internal/converter"
	"github.com/nconklindev/exclar/internal/logging"
	"github.com/nconklindev/exclar/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the configuration shared by every command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "exclar",
		Short: "Turn an Open Items List workbook into an Exceptions and Clarifications document",
		Long: `exclar reads the "Open Items List" sheet of an .xlsx workbook, picks out the
remarks that mention an Exception or a Clarification and writes them as
bullets to ` + converter.OutputName + `.

Without a subcommand it opens a terminal drop zone: drag a workbook onto the
terminal (or paste its path) and press enter.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlag(config.KeyOutputDir, cmd.Root().PersistentFlags().Lookup("output-dir")); err != nil {
				return err
			}
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: a.runUI,
	}
	rootCmd.SetVersionTemplate(versionString())

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./exclar.yaml or ~/.config/exclar/exclar.yaml)")
	rootCmd.PersistentFlags().StringP("output-dir", "o", "", "directory for the generated document (default: next to the workbook)")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newPreviewCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func (a *app) runUI(cmd *cobra.Command, args []string) error {
	log, closer, err := logging.File(a.cfg.LogFile, a.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	conv := converter.New(converter.Options{
		OutputDir: a.cfg.OutputDir,
		Logger:    &log,
	})

	model := ui.InitialModel(conv, ui.Options{
		ResetDelay: a.cfg.StatusResetDelay,
		Logger:     &log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func versionString() string {
	return fmt.Sprintf("exclar %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
