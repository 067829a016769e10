// Package date provides an immutable calendar-day value with arithmetic
// that is safe for building month grids: month math clamps the day of
// month instead of normalizing into the next month, and week math is
// aware of a configurable first day of week.
//
// A Date has no time-of-day and no timezone. Two Dates are equal exactly
// when they name the same calendar day.
package date

import "time"

// Date is an immutable calendar day. The zero value is invalid; use New,
// Today, or FromTime.
type Date struct {
	year  int
	month time.Month
	day   int
}

// New returns the Date for the given year, month, and day.
// The day is clamped to the length of the month.
func New(year int, month time.Month, day int) Date {
	if day < 1 {
		day = 1
	}
	if max := daysIn(year, month); day > max {
		day = max
	}
	return Date{year: year, month: month, day: day}
}

// Today returns the current calendar day in local time.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Year returns the calendar year.
func (d Date) Year() int { return d.year }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of month, 1-based.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the invalid zero value.
func (d Date) IsZero() bool { return d.year == 0 && d.month == 0 && d.day == 0 }

// Time returns midnight UTC of the calendar day. It is the escape hatch
// for formatting and weekday computation.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Equal reports whether d and o name the same calendar day.
func (d Date) Equal(o Date) bool { return d == o }

// Compare returns -1, 0, or +1 ordering d against o by calendar day.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return sign(d.year - o.year)
	case d.month != o.month:
		return sign(int(d.month) - int(o.month))
	default:
		return sign(d.day - o.day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// SameMonth reports whether d and o fall in the same month of the same year.
func (d Date) SameMonth(o Date) bool {
	return d.year == o.year && d.month == o.month
}

// IsToday reports whether d is the current local calendar day.
func (d Date) IsToday() bool { return d == Today() }

// AddDays returns d shifted by n days. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddWeeks returns d shifted by n weeks. n may be negative.
func (d Date) AddWeeks(n int) Date { return d.AddDays(n * 7) }

// AddMonths returns d shifted by n months, clamping the day of month to
// the target month's length. Jan 31 plus one month is Feb 28 (or 29),
// never Mar 2.
func (d Date) AddMonths(n int) Date {
	y := d.year
	m := int(d.month) - 1 + n
	y += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	return New(y, time.Month(m+1), d.day)
}

// AddYears returns d shifted by n years, clamping Feb 29 to Feb 28 on
// non-leap targets.
func (d Date) AddYears(n int) Date {
	return New(d.year+n, d.month, d.day)
}

// SetYear returns d with the year replaced, clamping the day of month.
func (d Date) SetYear(year int) Date {
	return New(year, d.month, d.day)
}

// SetMonth returns d with the month replaced, clamping the day of month.
func (d Date) SetMonth(month time.Month) Date {
	return New(d.year, month, d.day)
}

// SetDay returns d with the day of month replaced, clamped to the month
// length.
func (d Date) SetDay(day int) Date {
	return New(d.year, d.month, day)
}

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int { return daysIn(d.year, d.month) }

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{year: d.year, month: d.month, day: d.DaysInMonth()}
}

// StartOfWeek returns the latest date on or before d whose weekday is
// firstDay.
func (d Date) StartOfWeek(firstDay time.Weekday) Date {
	diff := int(d.Weekday()) - int(firstDay)
	if diff < 0 {
		diff += 7
	}
	return d.AddDays(-diff)
}

// EndOfWeek returns the earliest date on or after d that is the last day
// of a week beginning on firstDay.
func (d Date) EndOfWeek(firstDay time.Weekday) Date {
	return d.StartOfWeek(firstDay).AddDays(6)
}

// String returns the date in ISO form, e.g. "2024-06-15".
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
