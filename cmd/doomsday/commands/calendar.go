package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/doomsday-api/internal/calendar"
)

func calendarCmd() *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "calendar YEAR MONTH",
		Short: "Print a month grid with its doomsday date marked",
		Long:  "Print a month grid. The doomsday date is marked *, the --target day <, and both !.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be an integer: %q", args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("month must be an integer: %q", args[1])
			}

			grid, err := calendar.MonthView(year, month, target)
			if err != nil {
				return err
			}
			writeGrid(cmd.OutOrStdout(), grid)
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "day of month to highlight")
	return cmd
}

// writeGrid prints grid as rows of four-column cells.
func writeGrid(out io.Writer, grid *calendar.MonthGrid) {
	fmt.Fprintln(out, grid.Title)

	headers := make([]string, len(grid.Headers))
	for i, h := range grid.Headers {
		headers[i] = fmt.Sprintf("%4s", h)
	}
	fmt.Fprintln(out, strings.Join(headers, ""))

	for _, week := range grid.Weeks() {
		var b strings.Builder
		for _, c := range week {
			if c.Blank {
				b.WriteString("    ")
				continue
			}
			mark := " "
			switch {
			case c.IsDoomsday && c.IsTarget:
				mark = "!"
			case c.IsDoomsday:
				mark = "*"
			case c.IsTarget:
				mark = "<"
			}
			fmt.Fprintf(&b, "%3d%s", c.Day, mark)
		}
		fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
	}
}
