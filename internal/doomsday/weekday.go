package doomsday

import "fmt"

// Details exposes the intermediate values of a weekday calculation.
type Details struct {
	Anchor            int         `json:"anchor"`
	YearLastTwoDigits int         `json:"year_last_two_digits"`
	Offset            int         `json:"offset"` // odd+11 offset
	MonthDoomsdayDate int         `json:"month_doomsday_date"`
	FinalOffset       int         `json:"final_offset"` // target day minus month doomsday, mod 7
	Trace             []TraceStep `json:"trace"`
	Year              int         `json:"year"`
	Month             int         `json:"month"`
	Day               int         `json:"day"`
}

// Result is the outcome of a weekday calculation.
type Result struct {
	WeekdayIndex        int     `json:"weekday_index"`
	Weekday             string  `json:"weekday"`
	YearDoomsdayIndex   int     `json:"year_doomsday_index"`
	YearDoomsdayWeekday string  `json:"year_doomsday_weekday"`
	Details             Details `json:"details"`
}

// Date returns the date the result was computed for. A Result that was
// not produced by Calculate may yield an invalid Date; Calculate rejects it.
func (r *Result) Date() Date {
	return Date{year: r.Details.Year, month: r.Details.Month, day: r.Details.Day}
}

// Calculate resolves the weekday of d.
func Calculate(d Date) (*Result, error) {
	// Dates can be rebuilt from exported Result fields, so check again.
	if _, err := NewDate(d.year, d.month, d.day); err != nil {
		return nil, err
	}

	yd, err := YearDoomsday(d.year)
	if err != nil {
		return nil, err
	}

	monthDoomsday := MonthDoomsdayDate(d.year, d.month)
	finalOffset := mod(d.day-monthDoomsday, 7)
	index := mod(yd.Weekday+finalOffset, 7)

	return &Result{
		WeekdayIndex:        index,
		Weekday:             Weekdays[index],
		YearDoomsdayIndex:   yd.Weekday,
		YearDoomsdayWeekday: Weekdays[yd.Weekday],
		Details: Details{
			Anchor:            yd.Anchor,
			YearLastTwoDigits: yd.Y,
			Offset:            yd.Offset,
			MonthDoomsdayDate: monthDoomsday,
			FinalOffset:       finalOffset,
			Trace:             yd.Trace,
			Year:              d.year,
			Month:             d.month,
			Day:               d.day,
		},
	}, nil
}

// CalculateString parses s as YYYY-MM-DD and resolves its weekday.
func CalculateString(s string) (*Result, error) {
	d, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return Calculate(d)
}

// CalculateWeekday accepts either a YYYY-MM-DD string or a Date.
// Any other input type yields a FormatError.
func CalculateWeekday(input any) (*Result, error) {
	switch v := input.(type) {
	case string:
		return CalculateString(v)
	case Date:
		return Calculate(v)
	case *Date:
		if v == nil {
			return nil, &FormatError{Input: "<nil>"}
		}
		return Calculate(*v)
	default:
		return nil, &FormatError{Input: fmt.Sprintf("%v", input)}
	}
}
