// Package tui renders an interactive velocity-space preview of a
// candidate table: each candidate is plotted at its (vx, vy) position
// and the sweep can be stepped or played in emission order.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trajgen/internal/generator"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
)

type tickMsg time.Time

// Model is the bubbletea model for the candidate sweep preview.
type Model struct {
	name    string
	table   *generator.Table
	idx     int
	playing bool
	rate    int

	minVX, maxVX float64
	minVY, maxVY float64
}

// NewModel builds a preview over an already drained table. The axis
// bounds are fixed from the table so the view is stable while stepping.
func NewModel(name string, table *generator.Table, rate int) Model {
	m := Model{name: name, table: table, rate: rate}
	if rate <= 0 {
		m.rate = 30
	}
	if table.Len() > 0 {
		m.minVX, m.maxVX = bounds(table.VX)
		m.minVY, m.maxVY = bounds(table.VY)
	}
	return m
}

func bounds(col []float64) (float64, float64) {
	lo, hi := col[0], col[0]
	for _, v := range col {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		// Degenerate axis: pad so the single value plots mid-canvas.
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.rate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "right", "l":
			m.playing = false
			if m.idx < m.table.Len()-1 {
				m.idx++
			}
		case "left", "h":
			m.playing = false
			if m.idx > 0 {
				m.idx--
			}
		case "r":
			m.idx = 0
			m.playing = false
		}
		return m, nil

	case tickMsg:
		if m.playing {
			if m.idx < m.table.Len()-1 {
				m.idx++
			} else {
				m.playing = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("trajgen preview"))
	b.WriteString("  ")
	b.WriteString(LabelStyle.Render(m.name))
	b.WriteString("\n")

	if m.table.Len() == 0 {
		b.WriteString("\nno candidates\n")
		b.WriteString(KeyHintStyle.Render("q quit"))
		return b.String()
	}

	b.WriteString(PanelStyle.Render(m.renderCanvas()))
	b.WriteString("\n")

	trj := m.table.Row(m.idx)
	status := StatusPaused.Render("paused")
	if m.playing {
		status = StatusPlaying.Render("playing")
	}
	b.WriteString(fmt.Sprintf("%s  %s %s  %s %s  %s %s  %s %s\n",
		status,
		LabelStyle.Render("candidate"), ValueStyle.Render(fmt.Sprintf("%d/%d", m.idx+1, m.table.Len())),
		LabelStyle.Render("vx"), ValueStyle.Render(fmt.Sprintf("%.4f", trj.VX)),
		LabelStyle.Render("vy"), ValueStyle.Render(fmt.Sprintf("%.4f", trj.VY)),
		LabelStyle.Render("speed"), ValueStyle.Render(fmt.Sprintf("%.4f", trj.Speed())),
	))
	b.WriteString(KeyHintStyle.Render("space play/pause  ←/→ step  r restart  q quit"))
	return b.String()
}

func (m Model) renderCanvas() string {
	canvas := make([][]rune, canvasHeight)
	for i := range canvas {
		canvas[i] = make([]rune, canvasWidth)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Axes through vx=0 / vy=0 when the origin is inside the window.
	if x0, ok := m.colFor(0, m.minVX, m.maxVX); ok {
		for y := 0; y < canvasHeight; y++ {
			canvas[y][x0] = '·'
		}
	}
	if yv, ok := m.rowFor(0); ok {
		for x := 0; x < canvasWidth; x++ {
			if canvas[yv][x] == ' ' {
				canvas[yv][x] = '·'
			}
		}
	}

	// Emitted candidates so far, current one highlighted.
	for i := 0; i <= m.idx; i++ {
		x, okX := m.colFor(m.table.VX[i], m.minVX, m.maxVX)
		y, okY := m.rowFor(m.table.VY[i])
		if !okX || !okY {
			continue
		}
		if i == m.idx {
			canvas[y][x] = '◉'
		} else if canvas[y][x] != '◉' {
			canvas[y][x] = '•'
		}
	}

	rows := make([]string, canvasHeight)
	for i, line := range canvas {
		rows[i] = string(line)
	}
	return strings.Join(rows, "\n")
}

func (m Model) colFor(v, lo, hi float64) (int, bool) {
	if v < lo || v > hi {
		return 0, false
	}
	return int((v - lo) / (hi - lo) * float64(canvasWidth-1)), true
}

func (m Model) rowFor(vy float64) (int, bool) {
	if vy < m.minVY || vy > m.maxVY {
		return 0, false
	}
	// Canvas rows grow downward; vy grows upward.
	return canvasHeight - 1 - int((vy-m.minVY)/(m.maxVY-m.minVY)*float64(canvasHeight-1)), true
}
