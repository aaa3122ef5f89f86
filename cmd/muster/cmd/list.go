package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the available demonstrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range s.registry.Entries() {
			fmt.Fprintf(out, "%-24s %s\n", e.Label(), e.Category)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
