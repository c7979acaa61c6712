package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"muster/internal/pipeline"
	"muster/internal/report"
	"muster/internal/runstore"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var noStore bool
	var ratio float64
	var trustTopics bool

	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Ingest exports, group meetings, and print the attendance report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyExportsDir(cfg, args); err != nil {
				return err
			}
			if cmd.Flags().Changed("ratio") {
				cfg.Clustering.RatioThreshold = ratio
			}
			if cmd.Flags().Changed("trust-topics") {
				cfg.Clustering.TrustTopics = trustTopics
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			result, err := pipeline.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			renderReport(cmd.OutOrStdout(), result.Report)

			if noStore {
				return nil
			}
			return ctx.withStore(func(store *runstore.Store) error {
				run, err := store.RecordRun(cmd.Context(), runParams(cfg.Paths.ExportsDir, cfg.Clustering.RatioThreshold, result))
				if err != nil {
					return fmt.Errorf("record run: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nRecorded run %s\n", run.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noStore, "no-store", false, "Skip recording this run in the history database")
	cmd.Flags().Float64Var(&ratio, "ratio", 0, "Override the clustering ratio threshold for this run")
	cmd.Flags().BoolVar(&trustTopics, "trust-topics", false, "Label groups with meeting topics instead of the config label map")
	return cmd
}

func runParams(exportsDir string, ratio float64, result *pipeline.Result) runstore.RunParams {
	params := runstore.RunParams{
		ExportsDir:      exportsDir,
		RatioThreshold:  ratio,
		FileCount:       result.Scanned,
		StudentCount:    len(result.Report.Students),
		UnresolvedCount: len(result.Report.Unresolved),
		AmbiguityCount:  result.Report.Ambiguities,
	}
	for position, summary := range result.Report.Clusters {
		params.Clusters = append(params.Clusters, runstore.ClusterRow{
			Position:       position,
			Label:          summary.Label,
			Meetings:       summary.Meetings,
			PeakAttendance: summary.PeakAttendance,
			Health:         summary.Health,
		})
	}
	for _, skip := range result.Skipped {
		params.Skipped = append(params.Skipped, runstore.SkipRow{File: skip.Name, Reason: skip.Reason})
	}
	return params
}

func renderReport(out io.Writer, rep *report.Report) {
	fmt.Fprintln(out, "Groups")
	fmt.Fprintln(out, renderClusterTable(rep.Clusters))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Students")
	fmt.Fprintln(out, renderStudentTable(rep.Students))

	if len(rep.Unresolved) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Unresolved attendees")
		rows := make([][]string, 0, len(rep.Unresolved))
		for _, item := range rep.Unresolved {
			rows = append(rows, []string{item.Label, strconv.Itoa(item.Count)})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Label", "Seen"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}

	if len(rep.Skipped) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Skipped files")
		for _, skip := range rep.Skipped {
			fmt.Fprintf(out, "  %s: %s\n", skip.Name, skip.Reason)
		}
	}

	if rep.Ambiguities > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Warning: %d meeting(s) matched more than one group; grouping depended on file order\n", rep.Ambiguities)
	}
}

func renderClusterTable(clusters []report.ClusterSummary) string {
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
			strconv.Itoa(cluster.LatestAttendance),
			fmt.Sprintf("%.0f%%", cluster.Health*100),
			cluster.FirstSeen.Format("2006-01-02"),
			cluster.LastSeen.Format("2006-01-02"),
		})
	}
	return renderTable(
		[]string{"Group", "Meetings", "Peak", "Latest", "Health", "First", "Last"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft},
	)
}

func renderStudentTable(students []report.StudentSummary) string {
	rows := make([][]string, 0, len(students))
	for _, student := range students {
		flag := ""
		switch {
		case student.TopDecile:
			flag = "top 10%"
		case student.BottomDecile:
			flag = "bottom 10%"
		}
		rows = append(rows, []string{
			student.Student.Name(),
			strconv.Itoa(student.TotalMinutes),
			strconv.Itoa(student.MeetingsAttended),
			fmt.Sprintf("%.0f", student.Percentile),
			flag,
		})
	}
	return renderTable(
		[]string{"Student", "Minutes", "Meetings", "Percentile", ""},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
	)
}
