package calendar

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zapponejosh/doomsday-api/internal/doomsday"
)

// GuessOutcome reports how a weekday guess compares to the computed answer.
type GuessOutcome struct {
	Guess    string `json:"guess"`
	Valid    bool   `json:"valid"`
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
	Hint     *Hint  `json:"hint,omitempty"`
}

// Hint holds the inputs needed to work a date out mentally without giving
// away the weekday.
type Hint struct {
	Anchor            int    `json:"anchor"`
	YearLastTwoDigits int    `json:"year_last_two_digits"`
	Offset            int    `json:"offset"`
	MonthDoomsdayDate int    `json:"month_doomsday_date"`
	Prompt            string `json:"prompt"`
}

// NewHint builds the expert-mode prompt for res.
func NewHint(res *doomsday.Result) *Hint {
	d := res.Details
	prompt := fmt.Sprintf("Compute mentally first: anchor=%d, y=%d, odd+11 offset=%d, month anchor=%d.",
		d.Anchor, d.YearLastTwoDigits, d.Offset, d.MonthDoomsdayDate)
	return &Hint{
		Anchor:            d.Anchor,
		YearLastTwoDigits: d.YearLastTwoDigits,
		Offset:            d.Offset,
		MonthDoomsdayDate: d.MonthDoomsdayDate,
		Prompt:            prompt,
	}
}

// NormalizeWeekday title-cases a weekday name ("tHURSDAY" -> "Thursday")
// and expands three-letter abbreviations. It returns false if the input
// names no weekday.
func NormalizeWeekday(s string) (string, bool) {
	name := cases.Title(language.English).String(strings.TrimSpace(s))
	if doomsday.WeekdayIndex(name) >= 0 {
		return name, true
	}
	if len(name) == 3 {
		for _, w := range doomsday.Weekdays {
			if strings.HasPrefix(w, name) {
				return w, true
			}
		}
	}
	return name, false
}

// CheckGuess compares guess with the weekday of res. Any guess that is not
// correct carries a Hint.
func CheckGuess(res *doomsday.Result, guess string) GuessOutcome {
	name, ok := NormalizeWeekday(guess)
	if !ok {
		return GuessOutcome{
			Guess:    strings.TrimSpace(guess),
			Feedback: fmt.Sprintf("%q is not a weekday. Guess one of Sunday through Saturday.", strings.TrimSpace(guess)),
			Hint:     NewHint(res),
		}
	}

	if name == res.Weekday {
		return GuessOutcome{Guess: name, Valid: true, Correct: true, Feedback: "Correct."}
	}

	return GuessOutcome{
		Guess:    name,
		Valid:    true,
		Feedback: fmt.Sprintf("Not quite. You guessed %s. Try again or reveal the steps.", name),
		Hint:     NewHint(res),
	}
}
