// Package compareview provides the interactive TUI for reviewing a
// comparison between two proposal revisions. The stateful presentation
// toggles (view mode, line numbers, word highlighting) live here; the
// comparison itself is computed by the compare service and re-projected,
// never re-aligned, when a toggle flips.
package compareview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bharathravi-in/RFP-sub004/internal/compare"
	"github.com/bharathravi-in/RFP-sub004/internal/diff"
	"github.com/bharathravi-in/RFP-sub004/internal/log"
	"github.com/bharathravi-in/RFP-sub004/internal/render"
)

// statusBarHeight is the number of terminal rows below the viewport.
const statusBarHeight = 2

// ResultMsg delivers a fresh comparison to the viewer, e.g. after a
// watched input file changed.
type ResultMsg struct {
	Result compare.Result
}

// Model is the comparison viewer.
type Model struct {
	result compare.Result
	styles render.Styles

	viewMode        diff.ViewMode
	showLineNumbers bool
	wordHighlight   bool

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New creates a viewer for an already-computed comparison.
func New(result compare.Result, styles render.Styles, mode diff.ViewMode, showLineNumbers, wordHighlight bool) Model {
	return Model{
		result:          result,
		styles:          styles,
		viewMode:        mode,
		showLineNumbers: showLineNumbers,
		wordHighlight:   wordHighlight,
	}
}

// ViewMode exposes the mode the reviewer last selected so the caller can
// persist it after the program exits.
func (m Model) ViewMode() diff.ViewMode {
	return m.viewMode
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "v":
			if m.viewMode == diff.ViewModeSideBySide {
				m.viewMode = diff.ViewModeUnified
			} else {
				m.viewMode = diff.ViewModeSideBySide
			}
			log.Debug(log.CatUI, "view mode toggled", "mode", m.viewMode)
			m.refreshContent()
			return m, nil

		case "n":
			m.showLineNumbers = !m.showLineNumbers
			m.refreshContent()
			return m, nil

		case "w":
			m.wordHighlight = !m.wordHighlight
			m.refreshContent()
			return m, nil

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-statusBarHeight))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-statusBarHeight)
		}
		m.refreshContent()
		return m, nil

	case ResultMsg:
		m.result = msg.Result
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refreshContent re-projects the classified sequence into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}

	r := render.New(m.styles, render.Options{
		Width:           m.viewport.Width,
		ShowLineNumbers: m.showLineNumbers,
		WordHighlight:   m.wordHighlight,
	})

	var body string
	if m.viewMode == diff.ViewModeUnified {
		body = r.Unified(m.result)
	} else {
		body = r.SideBySide(m.result)
	}
	m.viewport.SetContent(body)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading comparison..."
	}

	return m.viewport.View() + "\n" + m.statusBar()
}

// statusBar renders labels, stats, and key hints on two rows.
func (m Model) statusBar() string {
	r := render.New(m.styles, render.Options{Width: m.width})

	labels := r.Header(m.result)
	stats := r.StatsLine(m.result.Stats)
	mode := m.styles.Gutter.Render(fmt.Sprintf("[%s]", m.viewMode))
	pos := m.styles.Gutter.Render(fmt.Sprintf("%3.0f%%", m.ScrollPercent()*100))

	top := fmt.Sprintf("%s  %s  %s  %s", labels, mode, stats, pos)

	hints := m.styles.Gutter.Render("v: view mode • n: line numbers • w: word highlight • g/G: top/bottom • q: quit")

	return truncateRow(top, m.width) + "\n" + truncateRow(hints, m.width)
}

func truncateRow(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

var _ tea.Model = Model{}

// ScrollPercent reports the viewport position shown in the status bar.
func (m Model) ScrollPercent() float64 {
	if !m.ready {
		return 0
	}
	return m.viewport.ScrollPercent()
}

// contentLineCount reports how many display rows the current projection
// produced. Used in tests.
func (m Model) contentLineCount() int {
	if !m.ready {
		return 0
	}
	return strings.Count(m.viewport.View(), "\n") + 1
}
