package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/gridctl/internal/match"
	"github.com/kingrea/gridctl/internal/picker"
	"github.com/kingrea/gridctl/internal/platform"
	"github.com/kingrea/gridctl/internal/render"
)

func newCompareCmd() *cobra.Command {
	var detail string
	cmd := &cobra.Command{
		Use:   "compare <task-group-or-work-requirement>",
		Short: "Compare a task group against interactively selected worker pools",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := newToolkit()
			if err != nil {
				return err
			}
			defer tk.log.Close()
			source := picker.NewSource(tk.client)
			return tk.runComparison(cmd, args[0], source, detail)
		},
	}
	addDetailFlag(cmd, &detail)
	return cmd
}

func addDetailFlag(cmd *cobra.Command, detail *string) {
	cmd.Flags().StringVar(detail, "detail", "",
		"detail tables to print: all, none, or comma-separated row numbers (default: prompt)")
}

// runComparison is the shared command body: resolve the task group, populate
// the candidate set, evaluate, render.
func (t *toolkit) runComparison(cmd *cobra.Command, ref string, source match.CandidateSource, detail string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	group, err := platform.ResolveTaskGroup(ctx, t.client, ref, t.taskGroupChooser(cmd))
	if err != nil {
		t.log.Error("resolve %q: %v", ref, err)
		return err
	}
	t.log.Info("comparing task group %s (%s)", group.Name, group.ID)

	registry := match.NewRegistry(source, t.client, t.log)
	if err := registry.Populate(ctx); err != nil {
		t.log.Error("populate candidates: %v", err)
		return err
	}

	reports, err := registry.Check(ctx, match.NewRequirement(group.RunSpec))
	if err != nil {
		t.log.Error("check %s: %v", group.ID, err)
		return err
	}

	fmt.Fprintf(out, "Task group %s (%s)\n\n", group.Name, group.ID)
	fmt.Fprintln(out, render.SummaryTable(reports))

	indices, err := t.detailIndices(cmd, detail, len(reports))
	if err != nil {
		return err
	}
	for _, i := range indices {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.DetailTable(reports[i]))
	}
	return nil
}
