package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/doomsday-api/internal/calendar"
	"github.com/zapponejosh/doomsday-api/internal/doomsday"
)

// errWrongGuess makes the process exit non-zero on a wrong guess.
var errWrongGuess = errors.New("wrong guess")

func guessCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "guess YYYY-MM-DD WEEKDAY",
		Short: "Check a weekday you worked out in your head",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := doomsday.CalculateString(args[0])
			if err != nil {
				return err
			}

			outcome := calendar.CheckGuess(res, args[1])
			log.Debug("guess checked", slog.String("date", args[0]), slog.Bool("correct", outcome.Correct))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, outcome.Feedback)
			if outcome.Correct {
				return nil
			}

			if reveal {
				fmt.Fprintf(out, "%s is %s.\n\n", res.Date(), res.Weekday)
				if err := writeSteps(out, res); err != nil {
					return err
				}
			} else if outcome.Hint != nil {
				fmt.Fprintln(out, outcome.Hint.Prompt)
			}
			if !outcome.Valid {
				return fmt.Errorf("invalid weekday %q", outcome.Guess)
			}
			return errWrongGuess
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "show the answer and steps after a wrong guess")
	return cmd
}
