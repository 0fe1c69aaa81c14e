package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/doomsday-api/internal/calendar"
)

func anchorsCmd() *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "anchors YEAR",
		Short: "List the month doomsday dates of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be an integer: %q", args[0])
			}

			ref, err := calendar.MonthReference(year, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Month anchors for %d (doomsday: %s)\n", ref.Year, ref.Doomsday)
			fmt.Fprintln(out, ref.LeapExplanation)
			for _, a := range ref.Anchors {
				mark := " "
				if a.Active {
					mark = ">"
				}
				fmt.Fprintf(out, "%s %-10s %s\n", mark, a.MonthName, a.Label())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "mark the anchor of this month (1-12)")
	return cmd
}
