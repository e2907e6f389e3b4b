// Package viz renders a live terminal view of a running pendulum: the bob
// swinging in a small character canvas next to a scrolling angle graph.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/physics"
)

const (
	canvasWidth     = 41
	canvasHeight    = 17
	graphWidth      = 60
	graphHeight     = 10
	historyCapacity = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the pendulum in real time and keeps a scrolling history of
// the angle for the graph panel.
type Model struct {
	pend       *physics.Pendulum
	integrator dynamo.Integrator
	state      dynamo.State
	t, dt      float64
	running    bool
	history    []float64
}

func NewModel(pend *physics.Pendulum, integ dynamo.Integrator, dt float64) Model {
	return Model{
		pend:       pend,
		integrator: integ,
		state:      pend.Y0.Clone(),
		dt:         dt,
		running:    true,
		history:    make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.pend.Y0.Clone()
			m.t = 0
			m.history = m.history[:0]
		}
	case TickMsg:
		if m.running {
			// A few substeps per frame keeps the motion smooth at 60 fps
			// without a visible slow-motion effect.
			for i := 0; i < 4; i++ {
				m.step()
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.state = m.integrator.Step(m.pend, m.state, m.t, m.dt)
	m.t += m.dt

	m.history = append(m.history, m.state[0])
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) View() string {
	header := headerStyle.Render("physlab: driven pendulum")

	stats := lipgloss.JoinVertical(lipgloss.Left,
		statLine("t", fmt.Sprintf("%.2f", m.t)),
		statLine("theta", fmt.Sprintf("%+.4f rad", m.state[0])),
		statLine("omega", fmt.Sprintf("%+.4f rad/s", m.state[1])),
		statLine("energy", fmt.Sprintf("%.6f", m.pend.Energy(m.state))),
		statLine("status", status(m.running)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.drawPendulum()),
		lipgloss.NewStyle().Padding(1, 3).Render(stats),
	)

	graph := ""
	if len(m.history) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("theta history"),
		))
	}

	help := helpStyle.Render("space pause/resume · r reset · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, graph, help)
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func status(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}

// drawPendulum renders the rod and bob on a character grid, pivot at the
// top center, angle measured from straight down.
func (m Model) drawPendulum() string {
	grid := make([][]rune, canvasHeight)
	for i := range grid {
		grid[i] = make([]rune, canvasWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	pivotX, pivotY := canvasWidth/2, 1
	length := float64(canvasHeight - 4)
	theta := m.state[0]

	// Terminal cells are about twice as tall as wide.
	bobX := pivotX + int(math.Round(2*length*math.Sin(theta)))
	bobY := pivotY + int(math.Round(length*math.Cos(theta)))

	steps := 24
	for i := 1; i < steps; i++ {
		f := float64(i) / float64(steps)
		x := pivotX + int(math.Round(f*float64(bobX-pivotX)))
		y := pivotY + int(math.Round(f*float64(bobY-pivotY)))
		if x >= 0 && x < canvasWidth && y >= 0 && y < canvasHeight {
			grid[y][x] = '·'
		}
	}

	grid[pivotY][pivotX] = '+'
	if bobX >= 0 && bobX < canvasWidth && bobY >= 0 && bobY < canvasHeight {
		grid[bobY][bobX] = '●'
	}

	lines := make([]string, canvasHeight)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
