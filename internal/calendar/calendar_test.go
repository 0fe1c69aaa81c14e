package calendar_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/doomsday-api/internal/calendar"
	"github.com/zapponejosh/doomsday-api/internal/doomsday"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", calendar.MonthName(1))
	assert.Equal(t, "December", calendar.MonthName(12))
	assert.Equal(t, "", calendar.MonthName(0))
	assert.Equal(t, "", calendar.MonthName(13))
}

func TestShortDayName(t *testing.T) {
	assert.Equal(t, "Sun", calendar.ShortDayName(0))
	assert.Equal(t, "Thu", calendar.ShortDayName(4))
}

func TestLeapExplanation(t *testing.T) {
	assert.Contains(t, calendar.LeapExplanation(2000), "Leap year")
	assert.Contains(t, calendar.LeapExplanation(1900), "Not a leap year")
}

func TestMonthReference(t *testing.T) {
	ref, err := calendar.MonthReference(2024, 0)
	require.NoError(t, err)

	assert.True(t, ref.Leap)
	assert.Equal(t, "Thursday", ref.Doomsday)
	require.Len(t, ref.Anchors, 12)
	assert.Equal(t, "January 4", ref.Anchors[0].Label())
	assert.Equal(t, "February 29", ref.Anchors[1].Label())
	assert.Equal(t, "December 12", ref.Anchors[11].Label())

	for _, a := range ref.Anchors {
		d, err := doomsday.NewDate(2024, a.Month, a.Day)
		require.NoError(t, err)
		res, err := doomsday.Calculate(d)
		require.NoError(t, err)
		assert.Equal(t, a.Weekday, res.Weekday, a.Label())
		assert.False(t, a.Active, a.Label())
	}
}

func TestMonthReference_SelectedMonth(t *testing.T) {
	ref, err := calendar.MonthReference(1776, 7)
	require.NoError(t, err)

	var active []string
	for _, a := range ref.Anchors {
		if a.Active {
			active = append(active, a.Label())
		}
	}
	assert.Equal(t, []string{"July 11"}, active)

	for _, selected := range []int{-1, 13} {
		_, err := calendar.MonthReference(1776, selected)
		var re *doomsday.RangeError
		require.ErrorAs(t, err, &re, "selected %d", selected)
		assert.Equal(t, "month", re.Field)
	}
}

func TestMonthReference_OutOfRange(t *testing.T) {
	_, err := calendar.MonthReference(1699, 0)
	assert.True(t, doomsday.IsRange(err))
}

func TestMonthView(t *testing.T) {
	grid, err := calendar.MonthView(1776, 7, 4)
	require.NoError(t, err)

	assert.Equal(t, "July 1776 | doomsday: 11, target: 4", grid.Title)
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, grid.Headers)
	assert.Equal(t, 1, grid.FirstWeekday)
	assert.Equal(t, 31, grid.DaysInMonth)
	require.Len(t, grid.Cells, 32)

	assert.True(t, grid.Cells[0].Blank)
	assert.Equal(t, 1, grid.Cells[1].Day)
	assert.True(t, grid.Cells[4].IsTarget)
	assert.Equal(t, 4, grid.Cells[4].Day)
	assert.True(t, grid.Cells[11].IsDoomsday)

	weeks := grid.Weeks()
	require.Len(t, weeks, 5)
	assert.Len(t, weeks[4], 4)
}

func TestMonthView_MatchesTimePackage(t *testing.T) {
	for year := doomsday.MinYear; year <= doomsday.MaxYear; year += 37 {
		for month := 1; month <= 12; month++ {
			grid, err := calendar.MonthView(year, month, 0)
			require.NoError(t, err)

			want := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday()
			assert.Equal(t, int(want), grid.FirstWeekday, "%d-%02d", year, month)
			assert.NotContains(t, grid.Title, "target")
		}
	}
}

func TestMonthView_Errors(t *testing.T) {
	tests := []struct {
		name                string
		year, month, target int
	}{
		{"year too early", 1699, 1, 0},
		{"bad month", 2000, 13, 0},
		{"target past end", 2023, 2, 29},
		{"negative target", 2023, 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calendar.MonthView(tt.year, tt.month, tt.target)
			assert.True(t, doomsday.IsRange(err))
		})
	}
}

func TestCheckGuess(t *testing.T) {
	res, err := doomsday.CalculateString("1776-07-04")
	require.NoError(t, err)

	tests := []struct {
		guess       string
		wantValid   bool
		wantCorrect bool
		wantGuess   string
	}{
		{"Thursday", true, true, "Thursday"},
		{"  thursday ", true, true, "Thursday"},
		{"THU", true, true, "Thursday"},
		{"friday", true, false, "Friday"},
		{"Funday", false, false, "Funday"},
		{"", false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.guess, func(t *testing.T) {
			got := calendar.CheckGuess(res, tt.guess)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantCorrect, got.Correct)
			assert.Equal(t, tt.wantGuess, got.Guess)
		})
	}

	assert.Equal(t, "Correct.", calendar.CheckGuess(res, "thursday").Feedback)
	assert.Equal(t,
		"Not quite. You guessed Monday. Try again or reveal the steps.",
		calendar.CheckGuess(res, "monday").Feedback)
}

func TestCheckGuess_Hint(t *testing.T) {
	res, err := doomsday.CalculateString("1776-07-04")
	require.NoError(t, err)

	assert.Nil(t, calendar.CheckGuess(res, "Thursday").Hint)

	for _, guess := range []string{"Monday", "Funday"} {
		hint := calendar.CheckGuess(res, guess).Hint
		require.NotNil(t, hint, guess)
		assert.Equal(t, 0, hint.Anchor)
		assert.Equal(t, 76, hint.YearLastTwoDigits)
		assert.Equal(t, 4, hint.Offset)
		assert.Equal(t, 11, hint.MonthDoomsdayDate)
		assert.Equal(t, "Compute mentally first: anchor=0, y=76, odd+11 offset=4, month anchor=11.", hint.Prompt)
		assert.NotContains(t, hint.Prompt, "Thursday")
	}
}

func TestRandomDate(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		d := calendar.RandomDate(r)
		assert.GreaterOrEqual(t, d.Year(), doomsday.MinYear)
		assert.LessOrEqual(t, d.Year(), doomsday.MaxYear)

		_, err := doomsday.Calculate(d)
		require.NoError(t, err)
	}

	// Same seed, same sequence.
	a := calendar.RandomDate(rand.New(rand.NewPCG(7, 7)))
	b := calendar.RandomDate(rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)

	assert.NotPanics(t, func() { calendar.RandomDate(nil) })
}
