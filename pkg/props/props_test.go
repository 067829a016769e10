package props_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-headless/headless/pkg/props"
)

func TestPairs_Ordering(t *testing.T) {
	a := props.Attrs{ID: "cal-grid", Role: "grid", TabIndex: props.IntPtr(0)}
	a.SetAria("label", "June 2024")
	a.SetAria("disabled", "false")
	a.SetData("calendar-grid", "")

	got := a.Pairs()
	want := []props.Pair{
		{Key: "id", Value: "cal-grid"},
		{Key: "role", Value: "grid"},
		{Key: "tabindex", Value: "0"},
		{Key: "aria-disabled", Value: "false"},
		{Key: "aria-label", Value: "June 2024"},
		{Key: "data-calendar-grid", Value: ""},
	}
	assert.Equal(t, want, got)
}

func TestTabIndex_AbsentByDefault(t *testing.T) {
	var a props.Attrs
	_, present := a.TabIndexValue()
	assert.False(t, present, "zero Attrs must not be focusable")

	a.TabIndex = props.IntPtr(-1)
	v, present := a.TabIndexValue()
	require.True(t, present)
	assert.Equal(t, -1, v)
}

func TestHidden_RendersAriaHidden(t *testing.T) {
	a := props.Attrs{Hidden: true}
	got := a.Pairs()
	require.Len(t, got, 1)
	assert.Equal(t, props.Pair{Key: "aria-hidden", Value: "true"}, got[0])
}

// dayAttrs builds a bag the way widget prop providers do, returned by
// value.
func dayAttrs() props.Attrs {
	var a props.Attrs
	a.TabIndex = props.IntPtr(-1)
	a.SetAria("selected", "true")
	a.SetData("value", "2024-06-15")
	return a
}

func TestReads_ChainOffReturnedBag(t *testing.T) {
	// Widget props are returned by value; reads must work directly on
	// the call result without binding it to a variable first.
	v, ok := dayAttrs().TabIndexValue()
	require.True(t, ok)
	assert.Equal(t, -1, v)

	sel, ok := dayAttrs().Aria("selected")
	require.True(t, ok)
	assert.Equal(t, "true", sel)

	val, ok := dayAttrs().Data("value")
	require.True(t, ok)
	assert.Equal(t, "2024-06-15", val)

	assert.NotEmpty(t, dayAttrs().Pairs())
}

func TestBoolStr(t *testing.T) {
	assert.Equal(t, "true", props.BoolStr(true))
	assert.Equal(t, "false", props.BoolStr(false))
}
