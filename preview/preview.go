package preview

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matt-g-everett/animtx/anim"
)

const frameInterval = 33 * time.Millisecond

var (
	labelStyle = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("245"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

type bar struct {
	name  string
	level *anim.Animated[anim.Bool, anim.Instant]
}

// Model is a bubbletea model that animates one bar per easing curve, all
// looping forever with staggered delays.
type Model struct {
	bars  []bar
	width int
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// NewModel builds the easing catalog preview.
func NewModel() Model {
	curves := []struct {
		name   string
		easing anim.Easing
	}{
		{"linear", anim.Linear},
		{"easeInOut", anim.EaseInOut},
		{"easeInOutQuad", anim.EaseInOutQuad},
		{"easeInOutCubic", anim.EaseInOutCubic},
		{"easeInOutQuint", anim.EaseInOutQuint},
		{"easeInOutExpo", anim.EaseInOutExpo},
		{"easeInOutCirc", anim.EaseInOutCirc},
		{"easeOutBack", anim.EaseOutBack},
		{"easeOutElastic", anim.EaseOutElastic},
		{"easeInOutBounce", anim.EaseInOutBounce},
	}

	now := anim.Now()
	bars := make([]bar, 0, len(curves))
	for i, c := range curves {
		level := anim.New[anim.Bool, anim.Instant](false).
			Duration(1400).
			Easing(c.easing).
			Delay(float32(i) * 90).
			RepeatForever().
			AutoReverse().
			AutoStart(true, now)
		bars = append(bars, bar{name: c.name, level: level})
	}

	return Model{bars: bars, width: 80}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		return m, tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	now := anim.Now()
	track := m.width - labelStyle.GetWidth() - 4
	if track < 10 {
		track = 10
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("animtx easing catalog"))
	b.WriteString("\n")
	for _, bar := range m.bars {
		// Overshooting curves can momentarily leave the track bounds.
		width := int(bar.level.AnimateFloat(1, float32(track), now))
		if width < 0 {
			width = 0
		} else if width > track+track/4 {
			width = track + track/4
		}
		b.WriteString(labelStyle.Render(bar.name))
		b.WriteString(barStyle.Render(strings.Repeat("█", width)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("q to quit"))
	return b.String()
}

// Run starts the preview in the alternate screen.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
