// Package calendar builds the practice views around a doomsday calculation:
// the month anchor reference, the month grid, guess checking and random dates.
package calendar

import "github.com/zapponejosh/doomsday-api/internal/doomsday"

// MonthNames lists month names, January first.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the name of month (1-12), or "" if out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}

// ShortDayName returns the three-letter abbreviation of a weekday index.
func ShortDayName(index int) string {
	return doomsday.WeekdayName(index)[:3]
}

// LeapExplanation describes why year is or is not a leap year.
func LeapExplanation(year int) string {
	if doomsday.IsLeapYear(year) {
		return "Leap year (divisible by 400, or divisible by 4 but not by 100)"
	}
	return "Not a leap year (fails the divisible-by-400 / 4-and-not-100 rule)"
}
