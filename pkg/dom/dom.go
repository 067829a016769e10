// Package dom is the widget states' attachment boundary. The rendering
// layer registers an Element per logical id and wires adapter hooks into
// its real node implementation; widget code looks elements up by id and
// asks for focus or text mirroring. Every operation on a missing element
// or missing hook is a benign no-op: layout timing races are expected
// and recover on the next reactive pass.
package dom

import "sync"

// Element is a logical handle to a rendered node. The view layer keeps
// the hooks current for as long as the node is mounted.
type Element struct {
	// FocusFunc moves real focus to the node.
	FocusFunc func()

	// SetTextFunc replaces the node's text content. Used for off-screen
	// accessible headings.
	SetTextFunc func(text string)
}

// Focus requests focus on the backing node. No-op when e is nil or the
// view has not wired FocusFunc.
func (e *Element) Focus() {
	if e == nil || e.FocusFunc == nil {
		return
	}
	e.FocusFunc()
}

// SetText replaces the backing node's text. No-op when unwired.
func (e *Element) SetText(text string) {
	if e == nil || e.SetTextFunc == nil {
		return
	}
	e.SetTextFunc(text)
}

// Registry maps logical ids to mounted elements. The zero value is
// ready to use.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide shared registry.
func Default() *Registry {
	return defaultRegistry
}

// Attach binds id to el, replacing any previous binding.
func (r *Registry) Attach(id string, el *Element) {
	if id == "" {
		return
	}
	r.mu.Lock()
	if r.elements == nil {
		r.elements = make(map[string]*Element)
	}
	r.elements[id] = el
	r.mu.Unlock()
}

// Detach removes the binding for id, if any.
func (r *Registry) Detach(id string) {
	r.mu.Lock()
	delete(r.elements, id)
	r.mu.Unlock()
}

// Lookup returns the element bound to id, or nil. A nil result is safe
// to call Focus or SetText on.
func (r *Registry) Lookup(id string) *Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.elements[id]
}
