package main

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-headless/headless/pkg/calendar"
	"github.com/go-headless/headless/pkg/format"
	"github.com/go-headless/headless/pkg/keys"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	weekdayStyle  = lipgloss.NewStyle().Faint(true)
	dayStyle      = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	focusedStyle  = dayStyle.Reverse(true)
	selectedStyle = dayStyle.Bold(true).Foreground(lipgloss.Color("212"))
	outsideStyle  = dayStyle.Faint(true)
	disabledStyle = dayStyle.Faint(true).Strikethrough(true)
	todayStyle    = dayStyle.Underline(true)
	statusStyle   = lipgloss.NewStyle().Italic(true).Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// model is the Bubble Tea shell around the headless calendar state.
type model struct {
	cal *calendar.Calendar

	announcement string
	announceSeq  int
	pendingCmds  []tea.Cmd
}

func newModel(cal *calendar.Calendar) *model {
	return &model{cal: cal}
}

// setAnnouncement records the latest live-region message. Called from
// the announcer subscription.
func (m *model) setAnnouncement(message string, durationMS int) {
	m.announcement = message
	m.announceSeq++
	if durationMS > 0 {
		m.pendingCmds = append(m.pendingCmds,
			expireAfter(m.announceSeq, time.Duration(durationMS)*time.Millisecond))
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m.cal.NextButtonProps().OnClick()
			return m, m.drainPending()
		case "p":
			m.cal.PrevButtonProps().OnClick()
			return m, m.drainPending()
		}
		if key, mods, ok := translateKey(msg); ok {
			grid := m.cal.GridProps()
			grid.OnKeyDown(keys.NewEvent(key, mods))
			return m, m.drainPending()
		}
	case expireMsg:
		if msg.seq == m.announceSeq {
			m.announcement = ""
		}
	}
	return m, nil
}

// drainPending hands announcement-expiry ticks to the runtime.
func (m *model) drainPending() tea.Cmd {
	if len(m.pendingCmds) == 0 {
		return nil
	}
	cmds := m.pendingCmds
	m.pendingCmds = nil
	return tea.Batch(cmds...)
}

func (m *model) View() string {
	var b strings.Builder

	heading := m.cal.HeadingProps()
	b.WriteString(headingStyle.Render(heading.Text))
	b.WriteString("\n\n")

	monthViews := make([]string, 0, len(m.cal.Months()))
	for _, month := range m.cal.Months() {
		monthViews = append(monthViews, m.renderMonth(month))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, monthViews...))
	b.WriteString("\n")

	if m.announcement != "" {
		b.WriteString(statusStyle.Render(m.announcement))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("arrows move · enter selects · pgup/pgdn month · shift+↑/↓ year · n/p page · q quits"))
	b.WriteString("\n")
	return b.String()
}

func (m *model) renderMonth(month calendar.Month) string {
	var b strings.Builder

	f := m.cal.Formatter()
	b.WriteString(weekdayStyle.Render(" " + strings.Join(f.WeekdayNames(m.cal.FirstDayOfWeek(), format.WeekdayShort), "  ")))
	b.WriteString("\n")

	for _, week := range month.Weeks {
		for _, d := range week {
			cell := m.cal.Cell(d, month.Value)
			b.WriteString(m.styleFor(cell).Render(strconv.Itoa(d.Day())))
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().MarginRight(3).Render(b.String())
}

func (m *model) styleFor(cell calendar.Cell) lipgloss.Style {
	switch {
	case cell.IsFocused():
		return focusedStyle
	case cell.IsSelected():
		return selectedStyle
	case cell.IsDisabled():
		return disabledStyle
	case cell.IsOutsideMonth():
		return outsideStyle
	case cell.IsToday():
		return todayStyle
	default:
		return dayStyle
	}
}

