package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/orderbook/internal/config"
	"github.com/kingrea/orderbook/internal/console"
	"github.com/kingrea/orderbook/internal/logbook"
	"github.com/kingrea/orderbook/internal/orderbook"
	"github.com/kingrea/orderbook/internal/tui"
)

type rootOptions struct {
	dir       string
	console   bool
	noJournal bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "orderbook",
		Short: "Track work orders, who they belong to and what is finished",
		Long: "orderbook keeps an in-memory list of work orders for one session.\n" +
			"Orders are numbered from 1, can be marked finished, and are summarised per worker.\n" +
			"Nothing is saved when the program exits.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.dir, "dir", "", "project directory holding .orderbook/ (defaults to the working directory)")
	cmd.Flags().BoolVar(&opts.console, "console", false, "use the numbered prompt loop instead of the full-screen menu")
	cmd.Flags().BoolVar(&opts.noJournal, "no-journal", false, "do not write the session journal")
	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	dir := opts.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dir = cwd
	}
	if err := config.InitDir(dir); err != nil {
		return fmt.Errorf("initializing %s: %w", config.Dir, err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if opts.console {
		if err := cfg.SetMode(config.ModeConsole); err != nil {
			return err
		}
	}
	if opts.noJournal {
		cfg.DisableJournal()
	}

	var journal *logbook.Logbook
	if cfg.JournalEnabled() {
		journal, err = logbook.New(cfg.JournalPath())
		if err != nil {
			return err
		}
		journal.Info("Session %s opened · mode: %s", journal.Session(), cfg.Mode())
	}

	registry := orderbook.NewRegistry()
	if cfg.Mode() == config.ModeConsole {
		if err := console.New(registry, cmd.InOrStdin(), cmd.OutOrStdout(), console.WithJournal(journal)).Run(); err != nil {
			journal.Error("Console stopped: %v", err)
			return fmt.Errorf("running console: %w", err)
		}
		return nil
	}

	p := tea.NewProgram(
		tui.NewApp(registry, tui.WithConfig(cfg), tui.WithLogbook(journal)),
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		journal.Error("TUI stopped: %v", err)
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
