package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/doomsday-api/internal/calendar"
	"github.com/zapponejosh/doomsday-api/internal/doomsday"
)

func randomCmd() *cobra.Command {
	var (
		seed   uint64
		answer bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random date to practice on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(seed, seed))
			}

			d := calendar.RandomDate(r)
			out := cmd.OutOrStdout()
			if !answer {
				fmt.Fprintln(out, d)
				return nil
			}

			res, err := doomsday.Calculate(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s is %s.\n", d, res.Weekday)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a repeatable date")
	cmd.Flags().BoolVar(&answer, "answer", false, "print the weekday as well")
	return cmd
}
