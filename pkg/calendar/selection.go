package calendar

import "github.com/go-headless/headless/pkg/date"

// Mode fixes the selection shape for the life of a Calendar.
type Mode int

const (
	// ModeSingle holds at most one selected date.
	ModeSingle Mode = iota

	// ModeMultiple holds an ordered set of selected dates.
	ModeMultiple
)

func (m Mode) String() string {
	if m == ModeMultiple {
		return "multiple"
	}
	return "single"
}

// Selection is the committed value, a tagged union over single and
// multiple shapes. Implementations are immutable; mutations return a
// replacement.
type Selection interface {
	// Mode reports the shape tag.
	Mode() Mode

	// IsEmpty reports whether nothing is selected.
	IsEmpty() bool

	// Includes is a same-day membership test.
	Includes(d date.Date) bool

	// Dates returns the selected dates in order. Single mode yields a
	// zero- or one-element slice.
	Dates() []date.Date

	// Last returns the most recently relevant selected date, used for
	// placeholder synchronization.
	Last() (date.Date, bool)
}

// single is the ModeSingle variant. The zero value is empty.
type single struct {
	value date.Date
	set   bool
}

// EmptySingle returns an empty single-mode selection.
func EmptySingle() Selection { return single{} }

// SingleOf returns a single-mode selection holding d.
func SingleOf(d date.Date) Selection { return single{value: d, set: true} }

func (s single) Mode() Mode    { return ModeSingle }
func (s single) IsEmpty() bool { return !s.set }

func (s single) Includes(d date.Date) bool {
	return s.set && s.value.Equal(d)
}

func (s single) Dates() []date.Date {
	if !s.set {
		return nil
	}
	return []date.Date{s.value}
}

func (s single) Last() (date.Date, bool) { return s.value, s.set }

// multiple is the ModeMultiple variant. Insertion order is preserved;
// chronological order is deliberately not imposed.
type multiple struct {
	dates []date.Date
}

// EmptyMultiple returns an empty multiple-mode selection.
func EmptyMultiple() Selection { return multiple{} }

// MultipleOf returns a multiple-mode selection holding the given dates
// in order, dropping same-day duplicates.
func MultipleOf(dates ...date.Date) Selection {
	m := multiple{}
	for _, d := range dates {
		if !m.Includes(d) {
			m.dates = append(m.dates, d)
		}
	}
	return m
}

func (m multiple) Mode() Mode    { return ModeMultiple }
func (m multiple) IsEmpty() bool { return len(m.dates) == 0 }

func (m multiple) Includes(d date.Date) bool {
	for _, v := range m.dates {
		if v.Equal(d) {
			return true
		}
	}
	return false
}

func (m multiple) Dates() []date.Date {
	out := make([]date.Date, len(m.dates))
	copy(out, m.dates)
	return out
}

func (m multiple) Last() (date.Date, bool) {
	if len(m.dates) == 0 {
		return date.Date{}, false
	}
	return m.dates[len(m.dates)-1], true
}

// add returns m with d appended.
func (m multiple) add(d date.Date) multiple {
	next := multiple{dates: make([]date.Date, 0, len(m.dates)+1)}
	next.dates = append(next.dates, m.dates...)
	next.dates = append(next.dates, d)
	return next
}

// remove returns m without d.
func (m multiple) remove(d date.Date) multiple {
	next := multiple{}
	for _, v := range m.dates {
		if !v.Equal(d) {
			next.dates = append(next.dates, v)
		}
	}
	return next
}

// emptyFor returns the empty selection of the given mode.
func emptyFor(mode Mode) Selection {
	if mode == ModeMultiple {
		return EmptyMultiple()
	}
	return EmptySingle()
}
