package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"muster/internal/pipeline"
	"muster/internal/report"
)

func newClustersCommand(ctx *commandContext) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "clusters [dir]",
		Short: "List meeting groups, or show one group's attendance grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyExportsDir(cfg, args); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			result, err := pipeline.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if label == "" {
				fmt.Fprintln(out, renderClusterTable(result.Report.Clusters))
				return nil
			}

			for _, cluster := range result.Report.Clusters {
				if !strings.EqualFold(cluster.Label, label) {
					continue
				}
				renderGrid(out, cluster, stdoutIsTerminal())
				return nil
			}
			return fmt.Errorf("no group labeled %q; run `muster clusters` to list groups", label)
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Show the attendance grid for one group")
	return cmd
}

// renderGrid prints one group's student-by-meeting attendance matrix with
// minutes colored by bucket.
func renderGrid(out io.Writer, cluster report.ClusterSummary, terminal bool) {
	fmt.Fprintf(out, "%s: %d meeting(s), health %.0f%%\n", cluster.Label, cluster.Meetings, cluster.Health*100)

	headers := make([]string, 0, len(cluster.Grid.MeetingTimes)+2)
	aligns := make([]columnAlignment, 0, cap(headers))
	headers = append(headers, "Student")
	aligns = append(aligns, alignLeft)
	for _, when := range cluster.Grid.MeetingTimes {
		headers = append(headers, when.Format("01/02"))
		aligns = append(aligns, alignRight)
	}
	headers = append(headers, "Total")
	aligns = append(aligns, alignRight)

	rows := make([][]string, 0, len(cluster.Grid.Rows))
	for _, row := range cluster.Grid.Rows {
		cells := make([]string, 0, len(headers))
		cells = append(cells, row.Student.Name())
		for _, cell := range row.Cells {
			if !cell.Attended {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, colorizeBucket(cell.Bucket, strconv.Itoa(cell.Minutes), terminal))
		}
		cells = append(cells, strconv.Itoa(row.TotalMinutes))
		rows = append(rows, cells)
	}

	fmt.Fprintln(out, renderTable(headers, rows, aligns))
}
