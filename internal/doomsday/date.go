package doomsday

import (
	"fmt"
	"regexp"
	"strconv"
)

// Supported year range.
const (
	MinYear = 1700
	MaxYear = 2100
)

var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Date is a validated proleptic Gregorian calendar date within [MinYear, MaxYear].
// The zero value is not a valid date; construct with NewDate or ParseDate.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate validates year, month and day and returns the corresponding Date.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, &RangeError{Field: "year", Value: year, Min: MinYear, Max: MaxYear}
	}
	if month < 1 || month > 12 {
		return Date{}, &RangeError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	if last := DaysInMonth(year, month); day < 1 || day > last {
		return Date{}, &RangeError{Field: "day", Value: day, Min: 1, Max: last}
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate parses text in YYYY-MM-DD form into a validated Date.
func ParseDate(s string) (Date, error) {
	m := isoDatePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, &FormatError{Input: s}
	}

	// The pattern guarantees the groups are digits only.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	return NewDate(year, month, day)
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month, 1-12.
func (d Date) Month() int { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// IsLeapYear reports whether year is a Gregorian leap year.
// Divisibility by 400 overrides the divisibility-by-100 exclusion.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysInMonth returns the number of days in month of year.
// It returns 0 for a month outside 1-12.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	default:
		return 0
	}
}
