// Package state provides the recompute signalling used by the widget
// states. Derived values are pull-based: a Notifier carries a version
// counter bumped on every input change, and a Memo caches its computed
// value until the version moves. The contract is "always reflects
// current inputs"; recomputation is synchronous and happens on read.
package state

import "sync"

// Notifier tracks an "inputs changed" signal. The zero value is ready to
// use.
type Notifier struct {
	mu        sync.Mutex
	version   uint64
	listeners []func()
}

// Version returns the current change counter. It starts at 0 and moves
// on every Invalidate.
func (n *Notifier) Version() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.version
}

// Invalidate bumps the version and synchronously notifies listeners.
func (n *Notifier) Invalidate() {
	n.mu.Lock()
	n.version++
	listeners := make([]func(), len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	for _, fn := range listeners {
		if fn != nil {
			fn()
		}
	}
}

// Subscribe registers a change listener and returns an unregister
// function. Listeners run synchronously inside Invalidate.
func (n *Notifier) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	index := len(n.listeners)
	n.listeners = append(n.listeners, fn)

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if index < len(n.listeners) {
			n.listeners[index] = nil
		}
	}
}

// Memo is a memoized derived value. It recomputes through its compute
// function whenever the source Notifier's version has moved since the
// last read.
type Memo[T any] struct {
	source  *Notifier
	compute func() T

	value  T
	at     uint64
	primed bool
}

// NewMemo builds a memoized getter over source. compute must be a pure
// function of the state guarded by source.
func NewMemo[T any](source *Notifier, compute func() T) *Memo[T] {
	return &Memo[T]{source: source, compute: compute}
}

// Get returns the derived value, recomputing if inputs changed.
func (m *Memo[T]) Get() T {
	v := m.source.Version()
	if !m.primed || v != m.at {
		m.value = m.compute()
		m.at = v
		m.primed = true
	}
	return m.value
}
