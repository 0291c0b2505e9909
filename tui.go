package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"woodgrain/texture"
)

// gridRenderer turns a texture into terminal text
type gridRenderer interface {
	// RowsFor returns how many grid rows fit in termRows terminal rows
	RowsFor(termRows int) int
	Render(g texture.Grid, p *Palette) string
}

type renderMode struct {
	name     string
	renderer gridRenderer
}

// ringStep is how much +/- change the ring or vein count
const ringStep = 1.0

type model struct {
	width      int
	height     int
	generators []texture.Generator
	current    int
	palettes   []*Palette
	palette    int
	modes      []renderMode
	mode       int

	grid     texture.Grid
	stats    texture.Stats
	bands    int
	rendered string
	err      error
	ready    bool
}

func initialModel(generators []texture.Generator, initial string) model {
	cache := NewPerformanceCache()

	current := 0
	for i, g := range generators {
		if g.Name() == initial {
			current = i
		}
	}

	LogInfo("creating initial TUI model", "generator", generators[current].Name())

	return model{
		generators: generators,
		current:    current,
		palettes:   NewPalettes(cache),
		modes: []renderMode{
			{name: "half blocks", renderer: NewShadeRenderer(cache)},
			{name: "glyphs", renderer: NewGlyphRenderer(cache)},
		},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) generator() texture.Generator {
	return m.generators[m.current]
}

// textureRows is the number of terminal rows left for the texture
func (m model) textureRows() int {
	return max(m.height-panelHeight-1, 1) // -1 for footer
}

// regenerate rebuilds the grid for the current size and generator and
// caches its rendering.
func (m *model) regenerate() {
	if !m.ready {
		return
	}
	mode := m.modes[m.mode]
	rows := mode.renderer.RowsFor(m.textureRows())

	grid, err := m.generator().Generate(m.width, rows)
	if err != nil {
		LogError("generate failed", "generator", m.generator().Name(), "width", m.width, "rows", rows, "err", err)
		m.err = err
		m.grid = nil
		m.rendered = ""
		return
	}

	m.err = nil
	m.grid = grid
	m.stats = texture.Analyze(grid)
	m.bands = texture.BandCount(grid)
	m.rendered = mode.renderer.Render(grid, m.palettes[m.palette])
	LogDebug("texture regenerated", "generator", m.generator().Name(), "width", m.width, "rows", rows,
		"mean", m.stats.Mean, "bands", m.bands)
}

// adjust changes the ring or vein count of the current generator
func (m *model) adjust(delta float64) bool {
	switch g := m.generator().(type) {
	case *texture.Wood:
		g.SetRings(g.Rings() + delta)
	case *texture.Marble:
		g.SetVeins(g.Veins() + delta)
	default:
		return false
	}
	return true
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			LogInfo("user requested quit", "key", msg.String())
			return m, tea.Quit
		case "r":
			m.generator().Reset()
			m.regenerate()
		case "+", "=":
			if m.adjust(ringStep) {
				m.regenerate()
			}
		case "-", "_":
			if m.adjust(-ringStep) {
				m.regenerate()
			}
		case "tab":
			m.current = (m.current + 1) % len(m.generators)
			LogDebug("generator changed", "generator", m.generator().Name())
			m.regenerate()
		case " ", "space":
			m.palette = (m.palette + 1) % len(m.palettes)
			m.regenerate()
		case "m":
			m.mode = (m.mode + 1) % len(m.modes)
			m.regenerate()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		LogInfo("window resized", "width", m.width, "height", m.height)
		m.regenerate()
	}

	return m, nil
}

func (m model) info() TextureInfo {
	info := TextureInfo{
		Generator: m.generator().Name(),
		Stats:     m.stats,
		Bands:     m.bands,
		Palette:   m.palettes[m.palette].Name,
		Mode:      m.modes[m.mode].name,
		Err:       m.err,
		Offset:    "-",
	}
	switch g := m.generator().(type) {
	case *texture.Wood:
		info.Param = fmt.Sprintf("rings %.1f", g.Rings())
		info.Offset = fmt.Sprint(g.Offset())
	case *texture.Marble:
		info.Param = fmt.Sprintf("veins %.1f", g.Veins())
		info.Offset = fmt.Sprint(g.Offset())
	case *texture.Clouds:
		info.Param = fmt.Sprintf("seed %d", g.Seed())
	}
	return info
}

func (m model) View() string {
	if !m.ready || m.width == 0 {
		return "Initializing preview..."
	}

	panel := RenderPanel(m.info(), m.width)

	footer := lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color("#888888")).
		Render("\n'q' quit | 'r' reset | +/- rings | TAB generator | SPACE palette | 'm' mode")

	return fmt.Sprintf("%s%s%s", panel, m.rendered, footer)
}
