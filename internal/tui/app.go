// Package tui is the interactive squat lab: parameter sliders, femur
// dragging, and animated squat playback in the terminal.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/squatlab/internal/anim"
	"github.com/san-kum/squatlab/internal/biomech"
	"github.com/san-kum/squatlab/internal/config"
	"github.com/san-kum/squatlab/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type param struct {
	key   string
	label string
	step  float64
	unit  string
}

var paramList = []param{
	{"thigh_angle", "thigh angle", 1.0, "deg"},
	{"shin_angle", "shin angle", 1.0, "deg"},
	{"torso", "torso length", 0.01, "m"},
	{"femur", "femur length", 0.01, "m"},
	{"shin", "shin length", 0.01, "m"},
	{"feet", "feet length", 0.01, "m"},
}

type model struct {
	cfg     *config.Config
	params  biomech.Parameters
	iv      biomech.InitialValues
	derived biomech.DerivedState

	cursor int
	drag   *biomech.DragSnapshot
	status string

	animating bool
	sched     anim.Schedule
	animStart time.Time

	history   []float64
	showGraph bool

	width, height int
}

func newModel(cfg *config.Config, iv biomech.InitialValues) model {
	m := model{
		cfg:     cfg,
		params:  cfg.Parameters(),
		iv:      iv,
		sched:   cfg.Schedule(),
		history: make([]float64, 0, 120),
		width:   80,
		height:  30,
	}
	m.recompute()
	return m
}

// Run starts the interactive session. The baseline constants are solved
// once up front; defaults that violate the balance domain abort here.
func Run(cfg *config.Config) error {
	iv, err := biomech.ComputeInitialValues(cfg.Parameters())
	if err != nil {
		return err
	}
	p := tea.NewProgram(newModel(cfg, iv), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	fps := m.cfg.Animation.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.animating {
			return m, nil
		}
		frame := m.sched.FrameAt(time.Since(m.animStart).Seconds())
		m.params.ThighAngle = frame.Thigh
		m.params.ShinAngle = frame.Shin
		m.recompute()
		if frame.Complete {
			m.animating = false
			m.status = "animation complete"
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.endDrag()
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.endDrag()
		if m.cursor < len(paramList)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-paramList[m.cursor].step)
	case "right", "l":
		m.adjust(paramList[m.cursor].step)
	case "enter", " ":
		m.endDrag()
	case "a":
		if m.animating {
			m.animating = false
			m.status = "animation stopped"
			return m, nil
		}
		m.endDrag()
		m.animating = true
		m.animStart = time.Now()
		m.status = "animating"
		return m, m.tick()
	case "g":
		m.showGraph = !m.showGraph
	case "r":
		m.endDrag()
		m.animating = false
		m.params = m.cfg.Parameters()
		m.history = m.history[:0]
		m.status = "reset"
		m.recompute()
	}
	return m, nil
}

// adjust nudges the selected parameter. Editing the femur length runs the
// drag protocol: a snapshot is captured on the first nudge and every
// further nudge solves against it, so the stature and ratios seen at drag
// start are preserved across the whole gesture.
func (m *model) adjust(delta float64) {
	p := paramList[m.cursor]
	m.status = ""

	if p.key == "femur" {
		if m.drag == nil {
			m.drag = biomech.BeginDrag(m.params, m.iv)
		}
		newFemur := m.params.FemurLength + delta
		upd, err := biomech.SolveFemurLength(newFemur, m.params, m.iv, m.drag)
		if err != nil {
			if errors.Is(err, biomech.ErrNoRoot) {
				m.status = "no consistent pose for that femur length"
			} else {
				m.status = err.Error()
			}
			return
		}
		m.params.FemurLength = newFemur
		m.params.ShinLength = upd.Shin
		m.params.TorsoLength = upd.Torso
		m.params.ShinAngle = upd.ShinAngle
		m.recompute()
		return
	}

	cur := m.params.GetParams()[p.key]
	if err := m.params.SetParam(p.key, cur+delta); err != nil {
		m.status = err.Error()
		return
	}
	m.recompute()
}

func (m *model) endDrag() {
	m.drag = nil
}

func (m *model) recompute() {
	m.derived = biomech.Evaluate(m.params)
	m.history = append(m.history, m.derived.TorsoAngleDeg)
	if len(m.history) > 120 {
		m.history = m.history[1:]
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + cyan.Render("s q u a t l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	values := m.params.GetParams()
	for i, p := range paramList {
		val := fmt.Sprintf("%8.2f %s", values[p.key], p.unit)
		marker := "  "
		if p.key == "femur" && m.drag != nil {
			marker = magenta.Render("⇄ ")
		}
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", p.label)) + magenta.Render(val) + " " + marker + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-14s", p.label)) + dim.Render(val) + " " + marker + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewFigure())
	b.WriteString("\n")
	b.WriteString(m.viewStats())

	if m.showGraph && len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(min(m.width-10, 70)),
			asciigraph.Caption("back angle (deg)"),
		)
		b.WriteString("\n" + graphIndent(graph) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n   " + yellow.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("   ↑↓ select  ←→ adjust  enter end drag  a animate  g graph  r reset  q quit") + "\n")

	return b.String()
}

func (m model) viewFigure() string {
	c := viz.NewCanvas(m.cfg.Display.Width, m.cfg.Display.Height)
	viz.DrawFigure(c, m.derived, m.params, m.cfg.Frame(), m.cfg.Display.Scale)

	var b strings.Builder
	for _, row := range c.Rows() {
		b.WriteString("   " + row + "\n")
	}
	return b.String()
}

func (m model) viewStats() string {
	var b strings.Builder

	state := green.Render("● editing")
	if m.animating {
		state = yellow.Render("● animating")
	}
	b.WriteString("   " + state + "\n")

	b.WriteString(fmt.Sprintf("   %s%s   %s%s   %s%s\n",
		dim.Render("back angle "), white.Render(fmt.Sprintf("%6.2f°", m.derived.TorsoAngleDeg)),
		dim.Render("stature "), white.Render(fmt.Sprintf("%.2f m", m.derived.ShoulderHeight)),
		dim.Render("torso/shin "), white.Render(fmt.Sprintf("%.3f", m.derived.TorsoShinRatio))))

	j := m.derived.Joints
	b.WriteString(fmt.Sprintf("   %s knee(%.2f, %.2f)  hip(%.2f, %.2f)  top(%.2f, %.2f)\n",
		dim.Render("joints"),
		j.Knee.X, j.Knee.Y, j.Hip.X, j.Hip.Y, j.TorsoTop.X, j.TorsoTop.Y))

	return b.String()
}

func graphIndent(graph string) string {
	lines := strings.Split(graph, "\n")
	for i := range lines {
		lines[i] = "   " + lines[i]
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
