// Package announce provides the shared live-region sink used by the
// widgets for assistive-technology announcements. The sink records what
// should be spoken; rendering it into an actual aria-live DOM node (and
// removing expired entries) is the view layer's job.
package announce

import "sync"

// Politeness maps onto the aria-live politeness settings.
type Politeness string

const (
	// Polite queues the announcement behind whatever the screen reader
	// is currently speaking.
	Polite Politeness = "polite"

	// Assertive interrupts the current speech.
	Assertive Politeness = "assertive"
)

// Announcement is a single live-region message.
type Announcement struct {
	// Message is the text to speak.
	Message string

	// Politeness selects the live-region channel.
	Politeness Politeness

	// DurationMS is how long the view should keep the message in the
	// live region, in milliseconds. Zero means the view's default.
	DurationMS int
}

// Listener receives announcements in the order they were made.
type Listener func(Announcement)

// Announcer is a live-region sink. Multiple widget instances may share
// one Announcer; each call is a fire-and-forget enqueue delivered to
// listeners in FIFO order.
type Announcer struct {
	mu        sync.Mutex
	listeners []Listener
	log       []Announcement
}

// New returns an empty Announcer.
func New() *Announcer {
	return &Announcer{}
}

var defaultAnnouncer = New()

// Default returns the process-wide shared Announcer.
func Default() *Announcer {
	return defaultAnnouncer
}

// Announce enqueues a message. durationMS of zero leaves expiry to the
// view's default.
func (a *Announcer) Announce(message string, politeness Politeness, durationMS int) {
	ann := Announcement{Message: message, Politeness: politeness, DurationMS: durationMS}

	a.mu.Lock()
	a.log = append(a.log, ann)
	listeners := make([]Listener, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()

	// Deliver outside the lock so a listener may call back in.
	for _, fn := range listeners {
		if fn != nil {
			fn(ann)
		}
	}
}

// Subscribe registers a listener and returns an unregister function.
func (a *Announcer) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	index := len(a.listeners)
	a.listeners = append(a.listeners, fn)

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if index < len(a.listeners) {
			a.listeners[index] = nil
		}
	}
}

// Log returns a copy of every announcement made so far, oldest first.
// Intended for tests and debugging overlays.
func (a *Announcer) Log() []Announcement {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Announcement, len(a.log))
	copy(out, a.log)
	return out
}

// Reset clears the recorded log. Listeners stay subscribed.
func (a *Announcer) Reset() {
	a.mu.Lock()
	a.log = nil
	a.mu.Unlock()
}
