// Package format renders calendar dates into the strings the widgets
// surface to users: month headings, weekday column labels, and the
// announcement text spoken when a selection changes.
package format

import (
	"fmt"
	"time"

	"github.com/go-headless/headless/pkg/date"
	"github.com/go-headless/headless/pkg/locale"
)

// WeekdayWidth selects how much of a weekday name to render.
type WeekdayWidth int

const (
	// WeekdayNarrow is the single-letter form, "S".
	WeekdayNarrow WeekdayWidth = iota

	// WeekdayShort is the two-letter column form, "Su".
	WeekdayShort

	// WeekdayAbbreviated is the three-letter form, "Sun".
	WeekdayAbbreviated

	// WeekdayLong is the full name, "Sunday".
	WeekdayLong
)

// Formatter produces locale-bound display strings. The zero value is not
// usable; construct with New.
type Formatter struct {
	loc locale.Locale
}

// New returns a Formatter bound to the given locale.
func New(loc locale.Locale) *Formatter {
	if loc.IsZero() {
		loc = locale.Default
	}
	return &Formatter{loc: loc}
}

// Locale returns the formatter's current locale.
func (f *Formatter) Locale() locale.Locale { return f.loc }

// SetLocale rebinds the formatter. Subsequent calls reflect the new locale.
func (f *Formatter) SetLocale(loc locale.Locale) {
	if loc.IsZero() {
		loc = locale.Default
	}
	f.loc = loc
}

// MonthYear returns the heading form of d's month, e.g. "June 2024".
func (f *Formatter) MonthYear(d date.Date) string {
	return fmt.Sprintf("%s %d", d.Month().String(), d.Year())
}

// Month returns the standalone month name, e.g. "June".
func (f *Formatter) Month(d date.Date) string {
	return d.Month().String()
}

// MonthYearRange returns the heading for a multi-month window,
// "June - July 2024" or "December 2024 - January 2025".
func (f *Formatter) MonthYearRange(first, last date.Date) string {
	if first.SameMonth(last) {
		return f.MonthYear(first)
	}
	if first.Year() == last.Year() {
		return fmt.Sprintf("%s - %s %d", first.Month().String(), last.Month().String(), last.Year())
	}
	return fmt.Sprintf("%s - %s", f.MonthYear(first), f.MonthYear(last))
}

// Weekday returns the name of w at the requested width.
func (f *Formatter) Weekday(w time.Weekday, width WeekdayWidth) string {
	name := w.String()
	switch width {
	case WeekdayNarrow:
		return name[:1]
	case WeekdayShort:
		return name[:2]
	case WeekdayAbbreviated:
		return name[:3]
	default:
		return name
	}
}

// WeekdayNames returns the seven weekday names at the requested width,
// starting from firstDay. The order matches a grid built with the same
// first day of week.
func (f *Formatter) WeekdayNames(firstDay time.Weekday, width WeekdayWidth) []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = f.Weekday(time.Weekday((int(firstDay)+i)%7), width)
	}
	return names
}

// SelectedDate returns the full announcement form of d, e.g.
// "Saturday, June 15, 2024".
func (f *Formatter) SelectedDate(d date.Date) string {
	return d.Time().Format("Monday, January 2, 2006")
}

// Custom formats d with an explicit time layout string.
func (f *Formatter) Custom(d date.Date, layout string) string {
	return d.Time().Format(layout)
}
