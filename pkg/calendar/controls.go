package calendar

import (
	"github.com/go-headless/headless/pkg/keys"
	"github.com/go-headless/headless/pkg/props"
)

// ButtonProps is the attribute bag for a page-turn button.
type ButtonProps struct {
	props.Attrs

	// OnClick turns the page. No-op while the button is disabled.
	OnClick func()
}

// NextButtonProps returns the forward page-turn button.
func (c *Calendar) NextButtonProps() ButtonProps {
	return c.pagerProps("next", "Next page", c.IsNextButtonDisabled(), c.NextPage)
}

// PrevButtonProps returns the backward page-turn button.
func (c *Calendar) PrevButtonProps() ButtonProps {
	return c.pagerProps("prev", "Previous page", c.IsPrevButtonDisabled(), c.PrevPage)
}

func (c *Calendar) pagerProps(name, label string, disabled bool, turn func()) ButtonProps {
	var a props.Attrs
	a.ID = c.cfg.ID + "-" + name
	a.Role = "button"
	a.SetAria("label", label)
	a.SetData("calendar-"+name+"-button", "")
	if disabled {
		a.SetAria("disabled", "true")
		a.SetData("disabled", "")
	}
	return ButtonProps{
		Attrs: a,
		OnClick: func() {
			if disabled {
				return
			}
			turn()
		},
	}
}

// HeadingProps is the attribute bag for the visual heading. The visual
// node is hidden from assistive technology; the calendar mirrors its
// label into the off-screen accessible heading instead, so screen
// readers hear window changes regardless of how the view renders the
// visible text.
type HeadingProps struct {
	props.Attrs

	// Text is the heading content, e.g. "June 2024".
	Text string
}

// HeadingProps returns the visual heading.
func (c *Calendar) HeadingProps() HeadingProps {
	var a props.Attrs
	a.ID = c.HeadingID()
	a.Hidden = true
	a.SetData("calendar-heading", "")
	return HeadingProps{Attrs: a, Text: c.HeadingValue()}
}

// AccessibleHeadingProps returns the off-screen heading node. The view
// renders it visually hidden and attaches it under its id; the
// calendar keeps its text current through the attachment registry.
func (c *Calendar) AccessibleHeadingProps() HeadingProps {
	var a props.Attrs
	a.ID = c.AccessibleHeadingID()
	a.SetData("calendar-accessible-heading", "")
	return HeadingProps{Attrs: a, Text: c.FullCalendarLabel()}
}

// GridProps is the attribute bag for the month grid, carrying the
// keyboard dispatch handler.
type GridProps struct {
	props.Attrs

	// OnKeyDown feeds key events into the root's dispatch.
	OnKeyDown func(*keys.Event) keys.Result
}

// GridProps returns the grid attributes.
func (c *Calendar) GridProps() GridProps {
	var a props.Attrs
	a.ID = c.GridID()
	a.Role = "grid"
	a.TabIndex = props.IntPtr(-1)
	a.SetAria("label", c.FullCalendarLabel())
	a.SetAria("readonly", props.BoolStr(c.cfg.Readonly))
	a.SetAria("disabled", props.BoolStr(c.cfg.Disabled))
	a.SetData("calendar-grid", "")
	return GridProps{Attrs: a, OnKeyDown: c.HandleKey}
}

// HeaderProps returns the widget header container attributes.
func (c *Calendar) HeaderProps() props.Attrs {
	var a props.Attrs
	a.ID = c.cfg.ID + "-header"
	a.SetData("calendar-header", "")
	return a
}

// GridHeadProps returns the weekday-name row container. It is hidden
// from assistive technology; the day cells carry full accessible
// labels of their own.
func (c *Calendar) GridHeadProps() props.Attrs {
	var a props.Attrs
	a.Hidden = true
	a.SetData("calendar-grid-head", "")
	return a
}

// GridRowProps returns a week-row container.
func (c *Calendar) GridRowProps() props.Attrs {
	var a props.Attrs
	a.Role = "row"
	a.SetData("calendar-grid-row", "")
	return a
}

// HeadCellProps returns a weekday-name cell.
func (c *Calendar) HeadCellProps() props.Attrs {
	var a props.Attrs
	a.Role = "columnheader"
	a.SetData("calendar-head-cell", "")
	return a
}
