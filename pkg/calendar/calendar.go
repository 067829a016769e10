package calendar

import (
	"fmt"
	"time"

	"github.com/go-headless/headless/pkg/announce"
	"github.com/go-headless/headless/pkg/date"
	"github.com/go-headless/headless/pkg/dom"
	"github.com/go-headless/headless/pkg/errors"
	"github.com/go-headless/headless/pkg/format"
	"github.com/go-headless/headless/pkg/locale"
	"github.com/go-headless/headless/pkg/state"
)

// Jump is the magnitude of a PageUp/PageDown placeholder move. The
// source behavior for the Shift modifier was never pinned down, so the
// mapping is configuration instead of a hard-coded rule.
type Jump int

const (
	// JumpDefault picks the standard magnitude: a month jump, or a
	// year jump for the Shift mapping.
	JumpDefault Jump = iota

	// JumpMonth moves the placeholder by one month.
	JumpMonth

	// JumpYear moves the placeholder by one year.
	JumpYear
)

// Config declares a Calendar. The zero value is usable: single mode,
// one month, today's date as the placeholder, default locale.
type Config struct {
	// ID prefixes every element id the calendar emits. Defaults to
	// "calendar".
	ID string

	// Mode fixes the selection shape for the calendar's lifetime.
	Mode Mode

	// Placeholder is the initial focus cursor. Defaults to today.
	Placeholder date.Date

	// Locale drives the first day of week and heading text.
	Locale locale.Locale

	// WeekStartDay overrides the locale's first day of week.
	WeekStartDay *time.Weekday

	// MonthCount is the number of visible months. Defaults to 1.
	MonthCount int

	// FixedWeeks pads every month to six week rows.
	FixedWeeks bool

	// PagedNavigation makes NextPage/PrevPage jump by MonthCount months
	// instead of one.
	PagedNavigation bool

	// Readonly blocks selection mutation but keeps navigation live.
	Readonly bool

	// Disabled blocks all interaction.
	Disabled bool

	// PreventDeselect keeps a click on a selected date from clearing it.
	PreventDeselect bool

	// MinValue is the inclusive lower selectable bound. Zero means
	// unbounded.
	MinValue date.Date

	// MaxValue is the inclusive upper selectable bound. Zero means
	// unbounded.
	MaxValue date.Date

	// IsDateDisabled marks individual dates non-interactive.
	IsDateDisabled func(date.Date) bool

	// IsDateUnavailable marks dates visible and focusable but not
	// selectable.
	IsDateUnavailable func(date.Date) bool

	// DisableDaysOutsideMonth removes adjacent-month padding days from
	// the tab sequence.
	DisableDaysOutsideMonth bool

	// OnDateSelect runs after every non-clearing commit.
	OnDateSelect func(date.Date)

	// Label is the accessible name of the calendar, prepended to the
	// heading for the full label.
	Label string

	// PageJump is the PageUp/PageDown magnitude. Defaults to JumpMonth.
	PageJump Jump

	// ShiftPageJump is the magnitude with Shift held. Defaults to
	// JumpYear.
	ShiftPageJump Jump

	// Formatter overrides the locale-derived formatter.
	Formatter *format.Formatter

	// Announcer overrides the shared live-region sink.
	Announcer *announce.Announcer

	// Registry overrides the shared attachment registry.
	Registry *dom.Registry
}

// Calendar is the root widget state. It exclusively owns the committed
// selection, the placeholder cursor, and the visible month window; all
// mutation happens through its methods, synchronously, with the grid,
// selection, and placeholder updated as a unit per transition.
type Calendar struct {
	cfg Config

	selection   Selection
	placeholder date.Date
	months      []Month

	firstDay  time.Weekday
	formatter *format.Formatter
	announcer *announce.Announcer
	registry  *dom.Registry

	notifier state.Notifier
	heading  *state.Memo[string]
}

// New constructs a Calendar and builds its initial month window.
func New(cfg Config) *Calendar {
	if cfg.ID == "" {
		cfg.ID = "calendar"
	}
	if cfg.MonthCount < 1 {
		cfg.MonthCount = 1
	}
	if cfg.Locale.IsZero() {
		cfg.Locale = locale.Default
	}
	if cfg.PageJump == JumpDefault {
		cfg.PageJump = JumpMonth
	}
	if cfg.ShiftPageJump == JumpDefault {
		cfg.ShiftPageJump = JumpYear
	}

	c := &Calendar{
		cfg:       cfg,
		selection: emptyFor(cfg.Mode),
		formatter: cfg.Formatter,
		announcer: cfg.Announcer,
		registry:  cfg.Registry,
	}
	if c.formatter == nil {
		c.formatter = format.New(cfg.Locale)
	}
	if c.announcer == nil {
		c.announcer = announce.Default()
	}
	if c.registry == nil {
		c.registry = dom.Default()
	}

	c.firstDay = cfg.Locale.FirstDayOfWeek()
	if cfg.WeekStartDay != nil {
		c.firstDay = *cfg.WeekStartDay
	}

	c.placeholder = cfg.Placeholder
	if c.placeholder.IsZero() {
		c.placeholder = date.Today()
	}

	c.heading = state.NewMemo(&c.notifier, c.computeHeading)
	c.rebuildMonths()
	return c
}

// ID returns the calendar's id prefix.
func (c *Calendar) ID() string { return c.cfg.ID }

// Mode returns the fixed selection mode.
func (c *Calendar) Mode() Mode { return c.cfg.Mode }

// Value returns the committed selection.
func (c *Calendar) Value() Selection { return c.selection }

// Placeholder returns the focus cursor date.
func (c *Calendar) Placeholder() date.Date { return c.placeholder }

// Months returns the current month window. The slice is replaced, not
// mutated, on every grid-affecting change.
func (c *Calendar) Months() []Month { return c.months }

// FirstDayOfWeek returns the effective week start day.
func (c *Calendar) FirstDayOfWeek() time.Weekday { return c.firstDay }

// Formatter returns the calendar's formatter, for view-layer reuse.
func (c *Calendar) Formatter() *format.Formatter { return c.formatter }

// Subscribe registers a listener invoked synchronously after every
// state transition. Returns an unregister function.
func (c *Calendar) Subscribe(fn func()) func() {
	return c.notifier.Subscribe(fn)
}

// VisibleMonths returns the first day of each month in the window.
func (c *Calendar) VisibleMonths() []date.Date {
	out := make([]date.Date, len(c.months))
	for i, m := range c.months {
		out[i] = m.Value
	}
	return out
}

// IsOutsideVisibleMonths reports whether no month in the window shares
// d's month.
func (c *Calendar) IsOutsideVisibleMonths(d date.Date) bool {
	for _, m := range c.months {
		if m.Value.SameMonth(d) {
			return false
		}
	}
	return true
}

// IsDateDisabled reports whether the disabled predicate or the
// inclusive MinValue/MaxValue bounds reject d.
func (c *Calendar) IsDateDisabled(d date.Date) bool {
	if c.cfg.IsDateDisabled != nil && c.cfg.IsDateDisabled(d) {
		return true
	}
	return c.isOutOfBounds(d)
}

func (c *Calendar) isOutOfBounds(d date.Date) bool {
	if !c.cfg.MinValue.IsZero() && d.Before(c.cfg.MinValue) {
		return true
	}
	if !c.cfg.MaxValue.IsZero() && d.After(c.cfg.MaxValue) {
		return true
	}
	return false
}

// IsDateUnavailable reports whether the unavailable predicate rejects d.
func (c *Calendar) IsDateUnavailable(d date.Date) bool {
	return c.cfg.IsDateUnavailable != nil && c.cfg.IsDateUnavailable(d)
}

// IsDateSelected is a same-day membership test against the committed
// selection.
func (c *Calendar) IsDateSelected(d date.Date) bool {
	return c.selection.Includes(d)
}

// IsInvalid reports whether any committed date fails the disabled or
// unavailable predicate. It detects externally injected invalid values.
func (c *Calendar) IsInvalid() bool {
	for _, d := range c.selection.Dates() {
		if c.IsDateDisabled(d) || c.IsDateUnavailable(d) {
			return true
		}
	}
	return false
}

// SetValue replaces the committed selection wholesale. The value's
// shape must match the configured mode; a mismatch is a programmer
// error routed through the error policy and the call becomes a no-op.
// A non-empty value synchronizes the placeholder to its most recently
// relevant date.
func (c *Calendar) SetValue(sel Selection) {
	if sel == nil {
		sel = emptyFor(c.cfg.Mode)
	}
	if sel.Mode() != c.cfg.Mode {
		errors.Report(errors.Config("calendar.SetValue",
			"%s value passed to %s-mode calendar", sel.Mode(), c.cfg.Mode))
		return
	}
	c.selection = sel
	if last, ok := sel.Last(); ok {
		c.moveCursor(last)
	}
	c.invalidate()
}

// HandleCellClick is the single selection-mutation entry point, shared
// by pointer activation and Enter/Space.
func (c *Calendar) HandleCellClick(d date.Date) {
	if c.cfg.Readonly || c.cfg.Disabled {
		return
	}
	if c.IsDateDisabled(d) || c.IsDateUnavailable(d) {
		return
	}

	switch c.cfg.Mode {
	case ModeSingle:
		c.clickSingle(d)
	case ModeMultiple:
		c.clickMultiple(d)
	}
}

func (c *Calendar) clickSingle(d date.Date) {
	cur, ok := c.selection.(single)
	if !ok {
		errors.Report(errors.State("calendar.HandleCellClick",
			"%s value stored in single-mode calendar", c.selection.Mode()))
		return
	}

	// The only clearing path in single mode: re-clicking the selected
	// day with deselect-prevention off.
	if cur.set && cur.value.Equal(d) && !c.cfg.PreventDeselect {
		c.selection = EmptySingle()
		c.moveCursor(d)
		c.announceCleared()
		c.invalidate()
		return
	}

	c.selection = SingleOf(d)
	c.moveCursor(d)
	c.announceSelected(d)
	if c.cfg.OnDateSelect != nil {
		c.cfg.OnDateSelect(d)
	}
	c.invalidate()
}

func (c *Calendar) clickMultiple(d date.Date) {
	cur, ok := c.selection.(multiple)
	if !ok {
		errors.Report(errors.State("calendar.HandleCellClick",
			"%s value stored in multiple-mode calendar", c.selection.Mode()))
		return
	}

	if cur.Includes(d) {
		if c.cfg.PreventDeselect {
			return
		}
		next := cur.remove(d)
		if next.IsEmpty() {
			c.selection = EmptyMultiple()
			c.moveCursor(d)
			c.announceCleared()
		} else {
			c.selection = next
		}
		c.invalidate()
		return
	}

	c.selection = cur.add(d)
	c.moveCursor(d)
	c.announceSelected(d)
	if c.cfg.OnDateSelect != nil {
		c.cfg.OnDateSelect(d)
	}
	c.invalidate()
}

// NextPage advances the placeholder by MonthCount months under paged
// navigation, otherwise by one, and rebuilds the window.
func (c *Calendar) NextPage() {
	c.page(c.pageDelta())
}

// PrevPage retreats the placeholder the same way NextPage advances it.
func (c *Calendar) PrevPage() {
	c.page(-c.pageDelta())
}

func (c *Calendar) pageDelta() int {
	if c.cfg.PagedNavigation {
		return c.cfg.MonthCount
	}
	return 1
}

func (c *Calendar) page(deltaMonths int) {
	c.placeholder = c.placeholder.AddMonths(deltaMonths)
	c.rebuildMonths()
	c.invalidate()
}

// NextYear advances the placeholder by one year.
func (c *Calendar) NextYear() {
	c.placeholder = c.placeholder.AddYears(1)
	c.rebuildMonths()
	c.invalidate()
}

// PrevYear retreats the placeholder by one year.
func (c *Calendar) PrevYear() {
	c.placeholder = c.placeholder.AddYears(-1)
	c.rebuildMonths()
	c.invalidate()
}

// SetYear moves the placeholder to the given year, clamping the day of
// month.
func (c *Calendar) SetYear(year int) {
	c.placeholder = c.placeholder.SetYear(year)
	c.rebuildMonths()
	c.invalidate()
}

// SetMonth moves the placeholder to the given month, clamping the day
// of month.
func (c *Calendar) SetMonth(month time.Month) {
	c.placeholder = c.placeholder.SetMonth(month)
	c.rebuildMonths()
	c.invalidate()
}

// SetLocale rebinds the locale, recomputing the week start day and the
// heading, and rebuilds the grid.
func (c *Calendar) SetLocale(loc locale.Locale) {
	if loc.IsZero() {
		loc = locale.Default
	}
	c.cfg.Locale = loc
	c.formatter.SetLocale(loc)
	if c.cfg.WeekStartDay == nil {
		c.firstDay = loc.FirstDayOfWeek()
	}
	c.rebuildMonths()
	c.invalidate()
}

// IsNextButtonDisabled reports whether paging forward is pointless:
// the calendar is disabled, or every date the next page would newly
// reveal lies past MaxValue.
func (c *Calendar) IsNextButtonDisabled() bool {
	if c.cfg.Disabled {
		return true
	}
	if c.cfg.MaxValue.IsZero() || len(c.months) == 0 {
		return false
	}
	nextStart := c.months[len(c.months)-1].Value.AddMonths(1).StartOfMonth()
	return nextStart.After(c.cfg.MaxValue)
}

// IsPrevButtonDisabled is the MinValue analogue of IsNextButtonDisabled.
func (c *Calendar) IsPrevButtonDisabled() bool {
	if c.cfg.Disabled {
		return true
	}
	if c.cfg.MinValue.IsZero() || len(c.months) == 0 {
		return false
	}
	prevEnd := c.months[0].Value.AddMonths(-1).EndOfMonth()
	return prevEnd.Before(c.cfg.MinValue)
}

// HeadingValue returns the visible window's heading, e.g. "June 2024"
// or "June - July 2024". Memoized; recomputed after any transition.
func (c *Calendar) HeadingValue() string {
	return c.heading.Get()
}

// FullCalendarLabel is the accessible name: the configured label plus
// the heading.
func (c *Calendar) FullCalendarLabel() string {
	label := c.cfg.Label
	if label == "" {
		label = "Event date"
	}
	return label + ", " + c.HeadingValue()
}

func (c *Calendar) computeHeading() string {
	if len(c.months) == 0 {
		return ""
	}
	return c.formatter.MonthYearRange(c.months[0].Value, c.months[len(c.months)-1].Value)
}

// moveCursor moves the placeholder, paging the window only when the
// target month is not already visible.
func (c *Calendar) moveCursor(d date.Date) {
	c.placeholder = d
	if c.IsOutsideVisibleMonths(d) {
		c.rebuildMonths()
	}
}

func (c *Calendar) rebuildMonths() {
	c.months = BuildMonths(c.placeholder, c.firstDay, c.cfg.MonthCount, c.cfg.FixedWeeks)
}

// invalidate publishes a completed transition: bumps the change signal
// and mirrors the heading into the off-screen accessible node.
func (c *Calendar) invalidate() {
	c.notifier.Invalidate()
	c.registry.Lookup(c.accessibleHeadingID()).SetText(c.FullCalendarLabel())
}

func (c *Calendar) announceSelected(d date.Date) {
	c.announcer.Announce(
		fmt.Sprintf("Selected Date: %s", c.formatter.SelectedDate(d)),
		announce.Polite, 0)
}

func (c *Calendar) announceCleared() {
	c.announcer.Announce("Selected date is now empty", announce.Polite, 5000)
}

// Element ids. The view layer attaches nodes under these ids; keyboard
// focus movement and heading mirroring look them up.

// GridID returns the id of the grid element.
func (c *Calendar) GridID() string { return c.cfg.ID + "-grid" }

// HeadingID returns the id of the visual heading element.
func (c *Calendar) HeadingID() string { return c.cfg.ID + "-heading" }

func (c *Calendar) accessibleHeadingID() string { return c.cfg.ID + "-accessible-heading" }

// AccessibleHeadingID returns the id of the off-screen heading node the
// calendar mirrors its label into.
func (c *Calendar) AccessibleHeadingID() string { return c.accessibleHeadingID() }

// CellID returns the id of the cell for d.
func (c *Calendar) CellID(d date.Date) string {
	return fmt.Sprintf("%s-cell-%s", c.cfg.ID, d)
}
