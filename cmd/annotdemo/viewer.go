package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/annotate/recording"
	"github.com/gogpu/annotate/recording/backends/braille"
)

// panStep is the fraction of the viewport moved per key press.
const panStep = 0.1

type keyMap struct {
	Left, Right, Up, Down key.Binding
	ZoomIn, ZoomOut       key.Binding
	Help, Quit            key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.ZoomIn, k.ZoomOut, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.ZoomIn, k.ZoomOut},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan right")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan down")),
	ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// viewer shows a recorder in the terminal. Panning and zooming change the
// recorder's limits, so limit-tracking annotations follow the viewport.
type viewer struct {
	rec    *recording.Recorder
	help   help.Model
	width  int
	height int
}

func newViewer(rec *recording.Recorder) viewer {
	return viewer{rec: rec, help: help.New()}
}

func (v viewer) Init() tea.Cmd { return nil }

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, keys.Help):
			v.help.ShowAll = !v.help.ShowAll
		case key.Matches(msg, keys.Left):
			v.rec.Pan(-panStep, 0)
		case key.Matches(msg, keys.Right):
			v.rec.Pan(panStep, 0)
		case key.Matches(msg, keys.Up):
			v.rec.Pan(0, panStep)
		case key.Matches(msg, keys.Down):
			v.rec.Pan(0, -panStep)
		case key.Matches(msg, keys.ZoomIn):
			v.rec.Zoom(1.25)
		case key.Matches(msg, keys.ZoomOut):
			v.rec.Zoom(0.8)
		}
	}
	return v, nil
}

func (v viewer) View() string {
	if v.width < 4 || v.height < 6 {
		return "window too small"
	}
	helpView := v.help.View(keys)
	cols := v.width - 2
	rows := v.height - 3 - lipgloss.Height(helpView)
	if rows < 1 {
		rows = 1
	}

	// The map is drawn for the terminal, not the recorder's image size.
	b := braille.NewBackend()
	if err := v.rec.PlaybackSize(b, cols*2, rows*4); err != nil {
		return err.Error()
	}

	x, y := v.rec.XBound(), v.rec.YBound()
	title := titleStyle.Render("annotdemo") +
		dimStyle.Render(fmt.Sprintf("  x [%.3g, %.3g]  y [%.3g, %.3g]  %d primitives",
			x[0], x[1], y[0], y[1], v.rec.Len()))
	return strings.Join([]string{
		title,
		boxStyle.Render(b.String()),
		helpView,
	}, "\n")
}
