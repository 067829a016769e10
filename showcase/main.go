// Command showcase is a terminal view layer over the headless calendar
// state. It exists to prove the headless contract: all interaction
// logic lives in pkg/calendar, and this program only translates key
// presses into keys.Event values and paints the attribute bags it
// reads back. Run it with:
//
//	go run ./showcase
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-headless/headless/pkg/announce"
	"github.com/go-headless/headless/pkg/calendar"
	"github.com/go-headless/headless/pkg/date"
	"github.com/go-headless/headless/pkg/errors"
	"github.com/go-headless/headless/pkg/keys"
	"github.com/go-headless/headless/pkg/locale"
)

func main() {
	defer errors.Recover("showcase.main")

	announcer := announce.New()

	cal := calendar.New(calendar.Config{
		Mode:       calendar.ModeSingle,
		Locale:     locale.MustParse("en-US"),
		MonthCount: 2,
		FixedWeeks: true,
		Label:      "Event date",
		MinValue:   date.Today().AddMonths(-12),
		MaxValue:   date.Today().AddMonths(12),
		Announcer:  announcer,
	})

	m := newModel(cal)

	// Drain live-region traffic into the status line, the way a web
	// view would drain it into an aria-live node.
	announcer.Subscribe(func(a announce.Announcement) {
		m.setAnnouncement(a.Message, a.DurationMS)
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}
}

// keymap translates terminal keys into the headless key model.
func translateKey(msg tea.KeyMsg) (keys.Key, keys.Modifiers, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return keys.KeyArrowUp, 0, true
	case tea.KeyDown:
		return keys.KeyArrowDown, 0, true
	case tea.KeyLeft:
		return keys.KeyArrowLeft, 0, true
	case tea.KeyRight:
		return keys.KeyArrowRight, 0, true
	case tea.KeyShiftUp:
		return keys.KeyPageUp, keys.ModShift, true
	case tea.KeyShiftDown:
		return keys.KeyPageDown, keys.ModShift, true
	case tea.KeyHome:
		return keys.KeyHome, 0, true
	case tea.KeyEnd:
		return keys.KeyEnd, 0, true
	case tea.KeyPgUp:
		return keys.KeyPageUp, 0, true
	case tea.KeyPgDown:
		return keys.KeyPageDown, 0, true
	case tea.KeyEnter:
		return keys.KeyEnter, 0, true
	case tea.KeySpace:
		return keys.KeySpace, 0, true
	}
	return keys.KeyOther, 0, false
}

// expireMsg clears the announcement line after its live-region
// duration elapses.
type expireMsg struct{ seq int }

func expireAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return expireMsg{seq: seq} })
}
