package calendar

import (
	"fmt"

	"github.com/zapponejosh/doomsday-api/internal/doomsday"
)

// Cell is one slot of a month grid. Blank cells pad the first week and
// have Day 0.
type Cell struct {
	Day        int  `json:"day"`
	Blank      bool `json:"blank,omitempty"`
	IsDoomsday bool `json:"is_doomsday,omitempty"`
	IsTarget   bool `json:"is_target,omitempty"`
}

// MonthGrid is a Sunday-first calendar layout of one month.
type MonthGrid struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	Title        string   `json:"title"`
	Headers      []string `json:"headers"`
	FirstWeekday int      `json:"first_weekday"`
	DaysInMonth  int      `json:"days_in_month"`
	DoomsdayDate int      `json:"doomsday_date"`
	Target       int      `json:"target,omitempty"`
	Cells        []Cell   `json:"cells"`
}

// Weeks splits the cells into rows of seven. The last row may be short.
func (g *MonthGrid) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		end := min(i+7, len(g.Cells))
		weeks = append(weeks, g.Cells[i:end])
	}
	return weeks
}

// MonthView lays out month of year, marking the month doomsday date and
// the target day. A target of 0 marks no day.
func MonthView(year, month, target int) (*MonthGrid, error) {
	first, err := doomsday.NewDate(year, month, 1)
	if err != nil {
		return nil, err
	}

	days := doomsday.DaysInMonth(year, month)
	if target < 0 || target > days {
		return nil, &doomsday.RangeError{Field: "day", Value: target, Min: 1, Max: days}
	}

	res, err := doomsday.Calculate(first)
	if err != nil {
		return nil, fmt.Errorf("first weekday: %w", err)
	}

	dd := doomsday.MonthDoomsdayDate(year, month)

	headers := make([]string, 0, 7)
	for i := range doomsday.Weekdays {
		headers = append(headers, ShortDayName(i))
	}

	cells := make([]Cell, 0, res.WeekdayIndex+days)
	for i := 0; i < res.WeekdayIndex; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{
			Day:        d,
			IsDoomsday: d == dd,
			IsTarget:   d == target,
		})
	}

	title := fmt.Sprintf("%s %d | doomsday: %d", MonthName(month), year, dd)
	if target > 0 {
		title += fmt.Sprintf(", target: %d", target)
	}

	return &MonthGrid{
		Year:         year,
		Month:        month,
		Title:        title,
		Headers:      headers,
		FirstWeekday: res.WeekdayIndex,
		DaysInMonth:  days,
		DoomsdayDate: dd,
		Target:       target,
		Cells:        cells,
	}, nil
}
