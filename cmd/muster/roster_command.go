package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"muster/internal/roster"
)

func newRosterCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Show the loaded student roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Paths.RosterPath == "" {
				return fmt.Errorf("no roster_path configured")
			}
			students, err := roster.Load(cfg.Paths.RosterPath)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, students.Len())
			for _, st := range students.Students() {
				grade := ""
				if st.GradeLevel > 0 {
					grade = strconv.Itoa(st.GradeLevel)
				}
				rows = append(rows, []string{st.ID, st.Name(), grade, st.Homeroom})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Grade", "Homeroom"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d student(s)\n", students.Len())
			return nil
		},
	}
}
