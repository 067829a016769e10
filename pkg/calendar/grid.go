// Package calendar implements the headless calendar widget state: a
// month grid, a committed selection, a keyboard-driven focus cursor,
// and the attribute bags a view layer renders from. All interaction
// logic lives here; no DOM is touched beyond the attachment boundary.
package calendar

import (
	"time"

	"github.com/go-headless/headless/pkg/date"
)

// fixedWeekCount is the grid height, in weeks, when FixedWeeks is set.
// Every Gregorian month fits in six display weeks.
const fixedWeekCount = 6

// Month is one rendered month of the grid. Months are disposable value
// objects: any input change produces a fresh slice of them, never an
// in-place mutation, so a consumer always observes a consistent
// snapshot.
type Month struct {
	// Value is the first day of the month.
	Value date.Date

	// Dates spans full display weeks, padded with adjacent-month days
	// so its length is always a multiple of seven.
	Dates []date.Date

	// Weeks is Dates chunked into rows of seven.
	Weeks [][]date.Date
}

// BuildMonths produces monthCount consecutive months starting at the
// placeholder's month. Each month's dates begin on firstDay and end on
// the day before the next firstDay; with fixedWeeks set, every month is
// padded to exactly six week rows by extending into the following
// month. Pure and deterministic: identical inputs yield value-equal
// output.
func BuildMonths(placeholder date.Date, firstDay time.Weekday, monthCount int, fixedWeeks bool) []Month {
	if monthCount < 1 {
		monthCount = 1
	}
	first := placeholder.StartOfMonth()
	months := make([]Month, monthCount)
	for i := range months {
		months[i] = buildMonth(first.AddMonths(i), firstDay, fixedWeeks)
	}
	return months
}

func buildMonth(first date.Date, firstDay time.Weekday, fixedWeeks bool) Month {
	start := first.StartOfWeek(firstDay)
	end := first.EndOfMonth().EndOfWeek(firstDay)

	days := daysBetween(start, end) + 1
	if fixedWeeks && days < fixedWeekCount*7 {
		end = end.AddDays(fixedWeekCount*7 - days)
		days = fixedWeekCount * 7
	}

	dates := make([]date.Date, 0, days)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}

	weeks := make([][]date.Date, 0, len(dates)/7)
	for i := 0; i+7 <= len(dates); i += 7 {
		weeks = append(weeks, dates[i:i+7])
	}

	return Month{Value: first, Dates: dates, Weeks: weeks}
}

// daysBetween returns the number of days from a to b. Negative when b
// is earlier.
func daysBetween(a, b date.Date) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}
