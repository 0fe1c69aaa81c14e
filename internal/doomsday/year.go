package doomsday

// Trace labels, in the order the odd+11 steps occur.
const (
	StepStart    = "start"
	StepAddOdd   = "add 11 (odd)"
	StepEvenSkip = "no change (even)"
	StepHalve    = "halve"
)

// TraceStep records one intermediate value of the odd+11 derivation.
type TraceStep struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// YearDoomsdayResult holds the year doomsday and how it was derived.
type YearDoomsdayResult struct {
	Weekday int         // doomsday weekday index
	Anchor  int         // century anchor
	Y       int         // last two digits of the year
	Offset  int         // 7 - (t mod 7)
	Trace   []TraceStep // always four entries
}

// YearDoomsday derives the doomsday of year with the odd+11 method:
//
//  1. t = y, the last two digits of the year
//  2. if t is odd, add 11
//  3. halve t
//  4. if t is odd, add 11
//  5. offset = 7 - (t mod 7)
//  6. doomsday = (anchor + offset) mod 7
//
// Steps 1-4 are recorded in the trace; steps 5 and 6 are reported by
// Offset and Weekday.
func YearDoomsday(year int) (YearDoomsdayResult, error) {
	anchor, err := CenturyAnchor(year)
	if err != nil {
		return YearDoomsdayResult{}, err
	}

	y := mod(year, 100)
	trace := make([]TraceStep, 0, 4)

	t := y
	trace = append(trace, TraceStep{Label: StepStart, Value: t})

	t = addElevenIfOdd(t, &trace)

	t /= 2
	trace = append(trace, TraceStep{Label: StepHalve, Value: t})

	t = addElevenIfOdd(t, &trace)

	offset := 7 - t%7

	return YearDoomsdayResult{
		Weekday: mod(anchor+offset, 7),
		Anchor:  anchor,
		Y:       y,
		Offset:  offset,
		Trace:   trace,
	}, nil
}

func addElevenIfOdd(t int, trace *[]TraceStep) int {
	if t%2 != 0 {
		t += 11
		*trace = append(*trace, TraceStep{Label: StepAddOdd, Value: t})
		return t
	}
	*trace = append(*trace, TraceStep{Label: StepEvenSkip, Value: t})
	return t
}
