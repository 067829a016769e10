package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-headless/headless/pkg/calendar"
	"github.com/go-headless/headless/pkg/date"
	"github.com/go-headless/headless/pkg/dom"
	"github.com/go-headless/headless/pkg/keys"
	"github.com/go-headless/headless/pkg/locale"
)

func press(t *testing.T, c *calendar.Calendar, key keys.Key, mods keys.Modifiers) *keys.Event {
	t.Helper()
	e := keys.NewEvent(key, mods)
	c.HandleKey(e)
	return e
}

func TestHandleKey_ArrowMovement(t *testing.T) {
	tests := []struct {
		key  keys.Key
		want string
	}{
		{keys.KeyArrowLeft, "2024-06-14"},
		{keys.KeyArrowRight, "2024-06-16"},
		{keys.KeyArrowUp, "2024-06-08"},
		{keys.KeyArrowDown, "2024-06-22"},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			c, _, _ := newTestCalendar(t, calendar.Config{})
			e := press(t, c, tt.key, 0)
			assert.Equal(t, tt.want, c.Placeholder().String())
			assert.True(t, e.DefaultPrevented(), "handled keys suppress the native default")
		})
	}
}

func TestHandleKey_HomeEnd(t *testing.T) {
	// en-GB weeks run Monday..Sunday; 2024-06-05 sits in the week
	// 2024-06-03 .. 2024-06-09.
	c, _, _ := newTestCalendar(t, calendar.Config{
		Locale:      locale.MustParse("en-GB"),
		Placeholder: date.New(2024, time.June, 5),
	})

	press(t, c, keys.KeyEnd, 0)
	assert.Equal(t, "2024-06-09", c.Placeholder().String())

	press(t, c, keys.KeyHome, 0)
	assert.Equal(t, "2024-06-03", c.Placeholder().String())
}

func TestHandleKey_PageJumps(t *testing.T) {
	c, _, _ := newTestCalendar(t, calendar.Config{})

	press(t, c, keys.KeyPageDown, 0)
	assert.Equal(t, "2024-07-15", c.Placeholder().String(), "PageDown jumps a month")

	press(t, c, keys.KeyPageUp, 0)
	assert.Equal(t, "2024-06-15", c.Placeholder().String())

	press(t, c, keys.KeyPageDown, keys.ModShift)
	assert.Equal(t, "2025-06-15", c.Placeholder().String(), "Shift promotes the jump to a year")

	press(t, c, keys.KeyPageUp, keys.ModShift)
	assert.Equal(t, "2024-06-15", c.Placeholder().String())
}

func TestHandleKey_ConfigurableJumpMapping(t *testing.T) {
	c, _, _ := newTestCalendar(t, calendar.Config{
		PageJump:      calendar.JumpYear,
		ShiftPageJump: calendar.JumpMonth,
	})

	press(t, c, keys.KeyPageDown, 0)
	assert.Equal(t, "2025-06-15", c.Placeholder().String())

	press(t, c, keys.KeyPageUp, keys.ModShift)
	assert.Equal(t, "2025-05-15", c.Placeholder().String())
}

func TestHandleKey_PagesWindowWhenTargetNotVisible(t *testing.T) {
	// 2024-06-30 is the last visible day; ArrowDown lands in July.
	c, _, reg := newTestCalendar(t, calendar.Config{
		Placeholder: date.New(2024, time.June, 30),
	})

	var focusedID string
	target := date.New(2024, time.July, 7)
	reg.Attach(c.CellID(target), &dom.Element{FocusFunc: func() { focusedID = c.CellID(target) }})

	press(t, c, keys.KeyArrowDown, 0)

	assert.Equal(t, target, c.Placeholder())
	assert.Equal(t, "2024-07-01", c.Months()[0].Value.String(), "window silently pages to reveal the target")
	assert.Equal(t, c.CellID(target), focusedID, "the target's day cell receives focus")
}

func TestHandleKey_StaysOnWindowWhenTargetVisible(t *testing.T) {
	c, _, _ := newTestCalendar(t, calendar.Config{})
	press(t, c, keys.KeyArrowRight, 0)
	assert.Equal(t, "2024-06-01", c.Months()[0].Value.String(), "in-window moves keep the window put")
}

func TestHandleKey_MissingCellElementIsBenign(t *testing.T) {
	c, _, _ := newTestCalendar(t, calendar.Config{})
	// No element attached for the target cell; the move still happens.
	press(t, c, keys.KeyArrowRight, 0)
	assert.Equal(t, "2024-06-16", c.Placeholder().String())
}

func TestHandleKey_BoundBlocksMove(t *testing.T) {
	c, _, _ := newTestCalendar(t, calendar.Config{
		Placeholder: date.New(2024, time.June, 15),
		MaxValue:    date.New(2024, time.June, 15),
	})

	press(t, c, keys.KeyArrowRight, 0)
	assert.Equal(t, "2024-06-15", c.Placeholder().String(), "a move past MaxValue is blocked")

	press(t, c, keys.KeyArrowLeft, 0)
	assert.Equal(t, "2024-06-14", c.Placeholder().String(), "moves inside the bound still work")
}

func TestHandleKey_EnterSelectsPlaceholder(t *testing.T) {
	c, _, _ := newTestCalendar(t, calendar.Config{Mode: calendar.ModeSingle})

	e := press(t, c, keys.KeyEnter, 0)
	assert.True(t, c.IsDateSelected(date.New(2024, time.June, 15)))
	assert.True(t, e.DefaultPrevented())

	// Space goes through the same entry point: same day toggles clear.
	press(t, c, keys.KeySpace, 0)
	assert.True(t, c.Value().IsEmpty())
}

func TestHandleKey_UnrecognizedPassesThrough(t *testing.T) {
	c, _, _ := newTestCalendar(t, calendar.Config{})
	e := keys.NewEvent(keys.KeyOther, 0)
	got := c.HandleKey(e)
	assert.Equal(t, keys.Ignored, got)
	assert.False(t, e.DefaultPrevented())
}

func TestHandleKey_ReadonlyAndDisabledPassThrough(t *testing.T) {
	for _, cfg := range []calendar.Config{{Readonly: true}, {Disabled: true}} {
		c, _, _ := newTestCalendar(t, cfg)
		e := press(t, c, keys.KeyArrowRight, 0)
		assert.Equal(t, "2024-06-15", c.Placeholder().String())
		assert.False(t, e.DefaultPrevented(), "pass-through keys keep their default action")
	}
}

func TestHandleKey_NilEvent(t *testing.T) {
	c, _, _ := newTestCalendar(t, calendar.Config{})
	require.Equal(t, keys.Ignored, c.HandleKey(nil))
}
