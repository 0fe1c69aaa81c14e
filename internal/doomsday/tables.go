package doomsday

// centuryAnchors maps a century start year to its doomsday weekday index.
// The values repeat on the 400-year Gregorian cycle.
var centuryAnchors = map[int]int{
	1600: 2,
	1700: 0,
	1800: 5,
	1900: 3,
	2000: 2,
	2100: 0,
}

// Month doomsday dates, January first.
var (
	commonMonthDoomsdays = [12]int{3, 28, 14, 4, 9, 6, 11, 8, 5, 10, 7, 12}
	leapMonthDoomsdays   = [12]int{4, 29, 14, 4, 9, 6, 11, 8, 5, 10, 7, 12}
)

// Weekdays lists weekday names by index, Sunday=0.
var Weekdays = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// WeekdayName returns the name for a weekday index. Out-of-range
// indices are reduced modulo 7.
func WeekdayName(index int) string {
	return Weekdays[mod(index, 7)]
}

// WeekdayIndex returns the index of a weekday name, or -1 if name is not
// one of Weekdays. The comparison is exact.
func WeekdayIndex(name string) int {
	for i, w := range Weekdays {
		if w == name {
			return i
		}
	}
	return -1
}

// Century returns the century start year for year, e.g. 1900 for 1999.
func Century(year int) int {
	c := year / 100
	if year%100 != 0 && year < 0 {
		c--
	}
	return c * 100
}

// CenturyAnchor returns the doomsday weekday index of the century containing year.
func CenturyAnchor(year int) (int, error) {
	century := Century(year)
	anchor, ok := centuryAnchors[century]
	if !ok {
		return 0, &ConfigurationError{Century: century}
	}
	return anchor, nil
}

// MonthDoomsdayDate returns the day of month that falls on the year's
// doomsday for month (1-12). It returns 0 for an invalid month.
func MonthDoomsdayDate(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if IsLeapYear(year) {
		return leapMonthDoomsdays[month-1]
	}
	return commonMonthDoomsdays[month-1]
}

// mod returns n modulo m in the range [0, m).
func mod(n, m int) int {
	return ((n % m) + m) % m
}
