// Command doomsday computes weekdays with the Doomsday rule from the terminal.
package main

import (
	"os"

	"github.com/zapponejosh/doomsday-api/cmd/doomsday/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
