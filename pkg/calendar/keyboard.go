package calendar

import (
	"github.com/go-headless/headless/pkg/date"
	"github.com/go-headless/headless/pkg/keys"
)

// HandleKey dispatches a key event from the grid element. Arrow keys
// move the placeholder by a day or a week, Home/End snap to the
// placeholder's week bounds, PageUp/PageDown jump by the configured
// magnitude, and Enter/Space activate the focused date through the
// same entry point as a pointer click. Handled keys have their default
// action suppressed. Unrecognized keys, and any key while the calendar
// is readonly or disabled, pass through untouched.
func (c *Calendar) HandleKey(e *keys.Event) keys.Result {
	if e == nil || c.cfg.Disabled || c.cfg.Readonly {
		return keys.Ignored
	}

	switch e.Key {
	case keys.KeyArrowLeft:
		e.PreventDefault()
		c.moveFocus(c.placeholder.AddDays(-1))
	case keys.KeyArrowRight:
		e.PreventDefault()
		c.moveFocus(c.placeholder.AddDays(1))
	case keys.KeyArrowUp:
		e.PreventDefault()
		c.moveFocus(c.placeholder.AddWeeks(-1))
	case keys.KeyArrowDown:
		e.PreventDefault()
		c.moveFocus(c.placeholder.AddWeeks(1))
	case keys.KeyHome:
		e.PreventDefault()
		c.moveFocus(c.placeholder.StartOfWeek(c.firstDay))
	case keys.KeyEnd:
		e.PreventDefault()
		c.moveFocus(c.placeholder.EndOfWeek(c.firstDay))
	case keys.KeyPageUp:
		e.PreventDefault()
		c.moveFocus(c.jumpTarget(e.Mods, -1))
	case keys.KeyPageDown:
		e.PreventDefault()
		c.moveFocus(c.jumpTarget(e.Mods, 1))
	case keys.KeyEnter, keys.KeySpace:
		e.PreventDefault()
		c.HandleCellClick(c.placeholder)
	default:
		return keys.Ignored
	}
	return keys.Handled
}

func (c *Calendar) jumpTarget(mods keys.Modifiers, direction int) date.Date {
	jump := c.cfg.PageJump
	if mods.Has(keys.ModShift) {
		jump = c.cfg.ShiftPageJump
	}
	if jump == JumpYear {
		return c.placeholder.AddYears(direction)
	}
	return c.placeholder.AddMonths(direction)
}

// moveFocus moves the placeholder to target, silently paging the
// window first when the target month is not visible, then focuses the
// target's day cell through the attachment registry. A target past a
// disabling bound blocks the move entirely.
func (c *Calendar) moveFocus(target date.Date) {
	if c.isOutOfBounds(target) {
		return
	}
	c.moveCursor(target)
	c.invalidate()
	c.registry.Lookup(c.CellID(target)).Focus()
}
