// Package props models the attribute bags the widget states hand to the
// rendering layer. A bag holds ARIA roles and states, structural data
// markers for styling and test hooks, and the element id; event handlers
// travel alongside as typed fields on each widget's prop struct.
package props

import (
	"sort"
	"strconv"
)

// Attrs is a plain attribute bag. The zero value is empty and usable.
type Attrs struct {
	// ID is the element id, used for DOM attachment.
	ID string

	// Role is the ARIA role.
	Role string

	// TabIndex is the roving tab index. Nil means the attribute is
	// absent and the element is not focusable at all.
	TabIndex *int

	// Hidden marks the element aria-hidden.
	Hidden bool

	aria map[string]string
	data map[string]string
}

// SetAria sets an aria-* attribute. The key is given without its
// "aria-" prefix.
func (a *Attrs) SetAria(key, value string) {
	if a.aria == nil {
		a.aria = make(map[string]string)
	}
	a.aria[key] = value
}

// Aria returns the value of an aria-* attribute and whether it is set.
func (a Attrs) Aria(key string) (string, bool) {
	v, ok := a.aria[key]
	return v, ok
}

// SetData sets a data-* attribute. The key is given without its
// "data-" prefix. An empty value renders as a bare marker attribute.
func (a *Attrs) SetData(key, value string) {
	if a.data == nil {
		a.data = make(map[string]string)
	}
	a.data[key] = value
}

// Data returns the value of a data-* attribute and whether it is set.
func (a Attrs) Data(key string) (string, bool) {
	v, ok := a.data[key]
	return v, ok
}

// TabIndexValue returns the tab index and whether the attribute is
// present. Value receiver so reads chain off returned prop bags.
func (a Attrs) TabIndexValue() (int, bool) {
	if a.TabIndex == nil {
		return 0, false
	}
	return *a.TabIndex, true
}

// Pair is one rendered attribute.
type Pair struct {
	Key   string
	Value string
}

// Pairs renders the bag as ordered key/value attributes: id, role,
// tabindex, aria-hidden, then aria-* and data-* sorted by key. The
// order is deterministic so renderers and tests can diff output.
func (a Attrs) Pairs() []Pair {
	var out []Pair
	if a.ID != "" {
		out = append(out, Pair{"id", a.ID})
	}
	if a.Role != "" {
		out = append(out, Pair{"role", a.Role})
	}
	if a.TabIndex != nil {
		out = append(out, Pair{"tabindex", strconv.Itoa(*a.TabIndex)})
	}
	if a.Hidden {
		out = append(out, Pair{"aria-hidden", "true"})
	}
	out = append(out, sortedPairs("aria-", a.aria)...)
	out = append(out, sortedPairs("data-", a.data)...)
	return out
}

func sortedPairs(prefix string, m map[string]string) []Pair {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Pair, len(keys))
	for i, k := range keys {
		out[i] = Pair{prefix + k, m[k]}
	}
	return out
}

// BoolStr renders a boolean the way ARIA state attributes expect.
func BoolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// IntPtr returns a pointer to n, for TabIndex assignment.
func IntPtr(n int) *int { return &n }
