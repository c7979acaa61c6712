package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"muster/internal/runstore"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "List recorded runs, or show one run's detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *runstore.Store) error {
				if len(args) == 1 {
					return showRun(cmd.Context(), cmd.OutOrStdout(), store, args[0])
				}
				return listRuns(cmd.Context(), cmd.OutOrStdout(), store, limit)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func listRuns(ctx context.Context, out io.Writer, store *runstore.Store, limit int) error {
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(run.FileCount),
			strconv.Itoa(run.ClusterCount),
			strconv.Itoa(run.StudentCount),
			strconv.Itoa(run.UnresolvedCount),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Run", "When", "Files", "Groups", "Students", "Unresolved"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
	))
	return nil
}

func showRun(ctx context.Context, out io.Writer, store *runstore.Store, id string) error {
	clusters, err := store.ClustersForRun(ctx, id)
	if err != nil {
		return err
	}
	skips, err := store.SkipsForRun(ctx, id)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(clusters))
	for _, cluster := range clusters {
		label := cluster.Label
		if label == "" {
			label = "(untagged)"
		}
		rows = append(rows, []string{
			label,
			strconv.Itoa(cluster.Meetings),
			strconv.Itoa(cluster.PeakAttendance),
			fmt.Sprintf("%.0f%%", cluster.Health*100),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Group", "Meetings", "Peak", "Health"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	))

	if len(skips) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Skipped files")
		for _, skip := range skips {
			fmt.Fprintf(out, "  %s: %s\n", skip.File, skip.Reason)
		}
	}
	return nil
}
