package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"muster/internal/attendance"
	"muster/internal/roster"
	"muster/internal/textutil"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "rename [dir]",
		Short: "Rename export files to \"<topic> <date>.csv\"",
		Long: `Rename export files in the exports directory to "<topic> <date>.csv",
derived from each file's meeting information. Without --apply the command
only prints what it would do.`,
		Args: cobra.MaximumNArgs(1),
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

			// Renaming only needs meeting metadata; attendee resolution
			// runs against an empty roster.
			resolver := roster.NewResolver(roster.New(nil), nil)
			scan, err := attendance.ScanDir(cfg.Paths.ExportsDir, resolver, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renamed := 0
			for _, record := range scan.Records {
				target := exportFileName(record)
				if target == "" || target == record.Origin() {
					continue
				}
				targetPath := filepath.Join(cfg.Paths.ExportsDir, target)
				if _, err := os.Stat(targetPath); err == nil {
					fmt.Fprintf(out, "skip %s: %s already exists\n", record.Origin(), target)
					continue
				}
				if !apply {
					fmt.Fprintf(out, "would rename %s to %s\n", record.Origin(), target)
					continue
				}
				if err := os.Rename(filepath.Join(cfg.Paths.ExportsDir, record.Origin()), targetPath); err != nil {
					return fmt.Errorf("rename %s: %w", record.Origin(), err)
				}
				fmt.Fprintf(out, "renamed %s to %s\n", record.Origin(), target)
				renamed++
			}

			for _, skip := range scan.Skipped {
				fmt.Fprintf(out, "skip %s: %s\n", skip.Name, skip.Reason)
			}
			if !apply {
				fmt.Fprintln(out, "Dry run; pass --apply to rename")
			} else {
				fmt.Fprintf(out, "Renamed %d file(s)\n", renamed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Perform the renames instead of printing them")
	return cmd
}

func exportFileName(record *attendance.Record) string {
	topic := textutil.SanitizeFileName(record.Topic())
	if topic == "" {
		return ""
	}
	return fmt.Sprintf("%s %s.csv", topic, record.StartTime().Format("2006-01-02"))
}
