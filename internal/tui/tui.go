package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pixlife/internal/config"
	"pixlife/internal/life"
)

var (
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	trailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("124"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type tickMsg time.Time

// Model drives a live terminal view of the grid. Each frame renders the
// current generation and the next tick advances it, mirroring the windowed
// loop.
type Model struct {
	grid     *life.Grid
	cfg      config.Config
	interval time.Duration
	paused   bool
}

// NewModel returns a Model paced at the configured TPS.
func NewModel(grid *life.Grid, cfg config.Config) Model {
	tps := cfg.TPS
	if tps <= 0 {
		tps = 30
	}
	return Model{grid: grid, cfg: cfg, interval: time.Second / time.Duration(tps)}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles keys and tick pacing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n":
			m.cfg.Advance(m.grid)
		case "r":
			m.grid.Randomize(m.cfg.Seed, m.cfg.Stream, m.cfg.Density)
		}
	case tickMsg:
		if !m.paused {
			m.cfg.Advance(m.grid)
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the board two runes per cell plus a status line.
func (m Model) View() string {
	var b strings.Builder
	cells := m.grid.Cells()
	w, h := m.grid.Width(), m.grid.Height()
	for y := 0; y < h; y++ {
		for _, c := range cells[y*w : (y+1)*w] {
			switch {
			case c.Alive:
				b.WriteString(liveStyle.Render("██"))
			case c.Heat > 0:
				b.WriteString(trailStyle.Render("░░"))
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	status := fmt.Sprintf("gen %d  pop %d", m.grid.Generation(), m.grid.Population())
	if m.paused {
		status += "  [paused]"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString(hintStyle.Render("   space pause, n step, r reseed, q quit"))
	b.WriteByte('\n')
	return b.String()
}

// Run starts the terminal view and blocks until the user quits.
func Run(grid *life.Grid, cfg config.Config) error {
	_, err := tea.NewProgram(NewModel(grid, cfg), tea.WithAltScreen()).Run()
	return err
}
