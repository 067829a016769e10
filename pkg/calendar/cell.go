package calendar

import (
	"github.com/go-headless/headless/pkg/date"
	"github.com/go-headless/headless/pkg/props"
)

// Cell is the per-date derived view over the root. It holds only a
// non-owning reference to the Calendar and the fixed (date, month) pair
// it renders under; every flag is recomputed from the root on read.
type Cell struct {
	cal   *Calendar
	date  date.Date
	month date.Date
}

// Cell returns the derived state for d rendered under the month
// starting at monthValue.
func (c *Calendar) Cell(d date.Date, monthValue date.Date) Cell {
	return Cell{cal: c, date: d, month: monthValue}
}

// Date returns the date this cell renders.
func (cl Cell) Date() date.Date { return cl.date }

// IsDisabled reports whether the date is rejected by the disabled
// predicate or bounds, or the whole calendar is disabled.
func (cl Cell) IsDisabled() bool {
	return cl.cal.cfg.Disabled || cl.cal.IsDateDisabled(cl.date)
}

// IsUnavailable reports whether the date is visible but not selectable.
func (cl Cell) IsUnavailable() bool { return cl.cal.IsDateUnavailable(cl.date) }

// IsToday reports whether the date is the current calendar day.
func (cl Cell) IsToday() bool { return cl.date.IsToday() }

// IsOutsideMonth reports whether the date is adjacent-month padding in
// the grid month it renders under. Distinct from
// IsOutsideVisibleMonths, which compares against the whole window.
func (cl Cell) IsOutsideMonth() bool { return !cl.date.SameMonth(cl.month) }

// IsOutsideVisibleMonths reports whether no visible month contains the
// date.
func (cl Cell) IsOutsideVisibleMonths() bool { return cl.cal.IsOutsideVisibleMonths(cl.date) }

// IsFocused reports whether the date is the placeholder.
func (cl Cell) IsFocused() bool { return cl.date.Equal(cl.cal.placeholder) }

// IsSelected reports whether the date is in the committed selection.
func (cl Cell) IsSelected() bool { return cl.cal.IsDateSelected(cl.date) }

// unreachable reports whether the cell is removed from the tab sequence
// entirely: disabled cells always, outside-month cells when configured.
func (cl Cell) unreachable() bool {
	if cl.IsDisabled() {
		return true
	}
	return cl.cal.cfg.DisableDaysOutsideMonth && cl.IsOutsideMonth()
}

// Activate commits the cell's date through the root's selection entry
// point. No-op while the cell is disabled.
func (cl Cell) Activate() {
	if cl.IsDisabled() {
		return
	}
	cl.cal.HandleCellClick(cl.date)
}

// CellProps is the attribute bag for the gridcell wrapper.
type CellProps struct {
	props.Attrs
}

// Props returns the gridcell attributes.
func (cl Cell) Props() CellProps {
	var a props.Attrs
	a.Role = "gridcell"
	a.SetAria("selected", props.BoolStr(cl.IsSelected()))
	if cl.IsDisabled() {
		a.SetAria("disabled", "true")
	}
	a.SetData("calendar-cell", "")
	a.SetData("value", cl.date.String())
	return CellProps{Attrs: a}
}

// DayProps is the attribute bag for the interactive day leaf inside a
// gridcell, with its activation handler.
type DayProps struct {
	props.Attrs

	// OnClick commits the date. Wire to the element's click event.
	OnClick func()
}

// DayProps returns the interactive day attributes. The roving tabindex
// keeps exactly one cell tab-reachable: the focused date gets 0, an
// unreachable cell gets no tabindex at all, every other cell gets -1
// so it stays programmatically focusable.
func (cl Cell) DayProps() DayProps {
	var a props.Attrs
	a.ID = cl.cal.CellID(cl.date)
	a.Role = "button"
	a.SetAria("label", cl.cal.formatter.SelectedDate(cl.date))
	if cl.IsDisabled() {
		a.SetAria("disabled", "true")
	}
	a.SetData("calendar-day", "")
	a.SetData("value", cl.date.String())
	if cl.IsToday() {
		a.SetData("today", "")
	}
	if cl.IsOutsideMonth() {
		a.SetData("outside-month", "")
	}
	if cl.IsOutsideVisibleMonths() {
		a.SetData("outside-visible-months", "")
	}
	if cl.IsSelected() {
		a.SetData("selected", "")
	}
	if cl.IsDisabled() {
		a.SetData("disabled", "")
	}
	if cl.IsUnavailable() {
		a.SetData("unavailable", "")
	}
	if cl.IsFocused() {
		a.SetData("focused", "")
	}

	switch {
	case cl.IsFocused():
		a.TabIndex = props.IntPtr(0)
	case cl.unreachable():
		// Out of the tab sequence entirely.
	default:
		a.TabIndex = props.IntPtr(-1)
	}

	return DayProps{Attrs: a, OnClick: cl.Activate}
}
