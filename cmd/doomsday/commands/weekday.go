package commands

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/doomsday-api/internal/calendar"
	"github.com/zapponejosh/doomsday-api/internal/doomsday"
)

func weekdayCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "weekday YYYY-MM-DD",
		Short: "Print the weekday of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := doomsday.CalculateString(args[0])
			if err != nil {
				return err
			}
			log.Debug("weekday computed", slog.String("date", args[0]), slog.String("weekday", res.Weekday))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is %s.\n", res.Date(), res.Weekday)
			if trace {
				fmt.Fprintln(out)
				return writeSteps(out, res)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "show each step of the calculation")
	return cmd
}

// writeSteps prints the step-by-step explanation of res.
func writeSteps(out io.Writer, res *doomsday.Result) error {
	d := res.Details
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Year doomsday (odd+11 method)\tValue")
	fmt.Fprintf(tw, "Century anchor (%ds)\t%d\n", doomsday.Century(d.Year), d.Anchor)
	for _, step := range d.Trace {
		fmt.Fprintf(tw, "%s\t%d\n", step.Label, step.Value)
	}
	fmt.Fprintf(tw, "7 - (value mod 7)\t%d\n", d.Offset)
	fmt.Fprintf(tw, "Year doomsday = (anchor + offset) mod 7\t%s\n", res.YearDoomsdayWeekday)
	fmt.Fprintln(tw, "\t")

	fmt.Fprintln(tw, "Date shift to target day\tValue")
	fmt.Fprintf(tw, "Leap-year check for %d\t%s\n", d.Year, calendar.LeapExplanation(d.Year))
	fmt.Fprintf(tw, "Month doomsday date for %d/%d\t%d\n", d.Month, d.Year, d.MonthDoomsdayDate)
	fmt.Fprintf(tw, "Offset = (target day - month doomsday) mod 7\t%d\n", d.FinalOffset)
	fmt.Fprintf(tw, "Final weekday = (year doomsday + offset) mod 7\t%s\n", res.Weekday)

	return tw.Flush()
}
