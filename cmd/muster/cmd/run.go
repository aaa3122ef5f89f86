package cmd

import (
	"fmt"

	"github.com/msto63/musterwerk/internal/menu"
	"github.com/msto63/musterwerk/internal/tui"
	"github.com/spf13/cobra"
)

var useTUI bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Starts the interactive menu",
	Long: `Starts the interactive menu.

Each round shows the numbered demonstrations, runs the selected one and asks
whether to continue. Out-of-range selections are clamped to the nearest entry.
With --tui the selection happens in a full-screen list instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, useTUI)
	},
}

func init() {
	runCmd.Flags().BoolVar(&useTUI, "tui", false, "pick demonstrations from a full-screen list")
	rootCmd.AddCommand(runCmd)
}

func runMenu(cmd *cobra.Command, withTUI bool) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	opts := []menu.Option{
		menu.WithLogger(s.logger.Named("menu")),
		menu.WithClearScreen(s.cfg.Menu.ClearScreen),
	}
	picker, err := newPicker(cmd, s, withTUI)
	if err != nil {
		return err
	}
	if picker != nil {
		opts = append(opts, menu.WithSelector(picker))
	} else {
		opts = append(opts, menu.WithTitle(s.cfg.Menu.Title))
	}

	s.logger.Debug("Starting menu", "entries", s.registry.Len(), "tui", picker != nil)

	loop := menu.NewLoop(s.registry, s.env.Prompter, opts...)
	if err := loop.Run(); err != nil {
		return err
	}

	s.logger.Info("Session finished", "runs", loop.Runs(), "state", loop.State().String())
	return nil
}

// newPicker returns the full-screen picker when one was requested. An explicit
// --tui without a terminal is an error; the config setting falls back to the
// console menu instead.
func newPicker(cmd *cobra.Command, s *session, withTUI bool) (*tui.Picker, error) {
	if !withTUI && !s.cfg.Menu.TUI {
		return nil, nil
	}

	picker, err := tui.NewPicker(cmd.InOrStdin(), cmd.OutOrStdout(), s.cfg.Menu.Title)
	if err == nil {
		return picker, nil
	}
	if withTUI {
		return nil, fmt.Errorf("--tui: %w", err)
	}

	s.logger.Warn("Falling back to console menu", "reason", err)
	return nil, nil
}
