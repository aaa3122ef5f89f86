package cmd

import (
	"fmt"

	"github.com/msto63/musterwerk/internal/console"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo <index>",
	Short: "Runs a single demonstration",
	Long: `Runs one demonstration by its menu index and exits.

The index is clamped the same way the interactive menu clamps it.`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	idx, err := console.ParseInt(args[0])
	if err != nil {
		return fmt.Errorf("invalid index: %w", err)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	entry := s.registry.Resolve(idx)
	s.logger.Info("Running demonstration", "index", entry.Index, "name", entry.Name)

	if err := entry.Action(); err != nil {
		return fmt.Errorf("demonstration %s failed: %w", entry.Name, err)
	}
	return nil
}
