package main

import (
	"github.com/spf13/cobra"

	"github.com/kingrea/gridctl/internal/match"
)

func newVerifyCmd() *cobra.Command {
	var detail string
	cmd := &cobra.Command{
		Use:   "verify <task-group-or-work-requirement> <worker-pool-id>...",
		Short: "Check a task group against explicitly named worker pools",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := newToolkit()
			if err != nil {
				return err
			}
			defer tk.log.Close()
			source := &match.ExplicitSource{IDs: args[1:], Client: tk.client}
			return tk.runComparison(cmd, args[0], source, detail)
		},
	}
	addDetailFlag(cmd, &detail)
	return cmd
}
