package calendar

import (
	"fmt"

	"github.com/zapponejosh/doomsday-api/internal/doomsday"
)

// MonthAnchor is the doomsday date of one month.
type MonthAnchor struct {
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Day       int    `json:"day"`
	Weekday   string `json:"weekday"`
	Active    bool   `json:"active,omitempty"`
}

// Label returns e.g. "July 11".
func (a MonthAnchor) Label() string {
	return fmt.Sprintf("%s %d", a.MonthName, a.Day)
}

// YearReference lists the month anchors of a year alongside its doomsday.
type YearReference struct {
	Year            int           `json:"year"`
	Leap            bool          `json:"leap"`
	LeapExplanation string        `json:"leap_explanation"`
	Doomsday        string        `json:"doomsday"`
	Anchors         []MonthAnchor `json:"anchors"`
}

// MonthReference returns the twelve month doomsday dates of year.
// All of them fall on the year doomsday. The anchor of selected is marked
// Active; 0 selects no month.
func MonthReference(year, selected int) (*YearReference, error) {
	if year < doomsday.MinYear || year > doomsday.MaxYear {
		return nil, &doomsday.RangeError{Field: "year", Value: year, Min: doomsday.MinYear, Max: doomsday.MaxYear}
	}
	if selected < 0 || selected > 12 {
		return nil, &doomsday.RangeError{Field: "month", Value: selected, Min: 1, Max: 12}
	}

	yd, err := doomsday.YearDoomsday(year)
	if err != nil {
		return nil, fmt.Errorf("year doomsday: %w", err)
	}
	weekday := doomsday.WeekdayName(yd.Weekday)

	anchors := make([]MonthAnchor, 0, 12)
	for month := 1; month <= 12; month++ {
		anchors = append(anchors, MonthAnchor{
			Month:     month,
			MonthName: MonthName(month),
			Day:       doomsday.MonthDoomsdayDate(year, month),
			Weekday:   weekday,
			Active:    month == selected,
		})
	}

	return &YearReference{
		Year:            year,
		Leap:            doomsday.IsLeapYear(year),
		LeapExplanation: LeapExplanation(year),
		Doomsday:        weekday,
		Anchors:         anchors,
	}, nil
}
