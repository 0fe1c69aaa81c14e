package calendar

import (
	"math/rand/v2"
	"time"

	"github.com/zapponejosh/doomsday-api/internal/doomsday"
)

var (
	rangeStart = time.Date(doomsday.MinYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(doomsday.MaxYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	// rangeDays is the number of days in the supported range.
	rangeDays = int((rangeEnd.Unix()-rangeStart.Unix())/86400) + 1
)

// RandomDate picks a day uniformly from the supported range. A nil r uses
// the global source.
func RandomDate(r *rand.Rand) doomsday.Date {
	var n int
	if r == nil {
		n = rand.IntN(rangeDays)
	} else {
		n = r.IntN(rangeDays)
	}

	t := rangeStart.AddDate(0, 0, n)
	d, err := doomsday.NewDate(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		// Every day in the range is valid.
		panic(err)
	}
	return d
}
