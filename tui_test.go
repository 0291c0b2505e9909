package main

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"woodgrain/texture"
)

func newTestModel(t *testing.T, initial string) model {
	t.Helper()
	s, err := parseSettings([]string{"-seed", "31", "-generator", initial}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	gens, err := buildGenerators(s)
	if err != nil {
		t.Fatal(err)
	}
	return initialModel(gens, s.generator)
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_InitialGenerator(t *testing.T) {
	m := newTestModel(t, "marble")
	if m.generator().Name() != "marble" {
		t.Errorf("initial generator = %q, want marble", m.generator().Name())
	}
	if m.View() != "Initializing preview..." {
		t.Errorf("View before sizing = %q", m.View())
	}
}

func TestModel_WindowSizeGenerates(t *testing.T) {
	m := newTestModel(t, "wood")
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	wantRows := (20 - panelHeight - 1) * 2
	if m.grid.Height() != wantRows || m.grid.Width() != 40 {
		t.Errorf("grid = %dx%d, want 40x%d", m.grid.Width(), m.grid.Height(), wantRows)
	}
	if m.rendered == "" {
		t.Error("texture was not rendered")
	}
	if !strings.Contains(m.View(), "WOOD GRAIN") {
		t.Error("View is missing the panel title")
	}
}

func TestModel_RingKeys(t *testing.T) {
	m := newTestModel(t, "wood")
	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 16})
	wood := m.generator().(*texture.Wood)
	start := wood.Rings()

	m = update(t, m, runeKey("+"))
	if wood.Rings() != start+ringStep {
		t.Errorf("rings after + = %v, want %v", wood.Rings(), start+ringStep)
	}

	for i := 0; i < 50; i++ {
		m = update(t, m, runeKey("-"))
	}
	if wood.Rings() != texture.MinRings {
		t.Errorf("rings after many - = %v, want %v", wood.Rings(), texture.MinRings)
	}
	if m.err != nil {
		t.Errorf("unexpected error: %v", m.err)
	}
}

func TestModel_ResetKey(t *testing.T) {
	m := newTestModel(t, "wood")
	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 16})
	wood := m.generator().(*texture.Wood)

	before := wood.Offset()
	for i := 0; i < 10 && wood.Offset() == before; i++ {
		m = update(t, m, runeKey("r"))
	}
	if wood.Offset() == before {
		t.Fatal("offset unchanged after repeated resets")
	}
	want, err := wood.Generate(30, m.grid.Height())
	if err != nil {
		t.Fatal(err)
	}
	if !gridsEqual(m.grid, want) {
		t.Error("grid was not regenerated after reset")
	}
}

func TestModel_CycleKeys(t *testing.T) {
	m := newTestModel(t, "wood")
	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 16})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.generator().Name() != "marble" {
		t.Errorf("after tab generator = %q, want marble", m.generator().Name())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.generator().Name() != "wood" {
		t.Errorf("after three tabs generator = %q, want wood", m.generator().Name())
	}

	m = update(t, m, runeKey(" "))
	if m.palettes[m.palette].Name != "gray" {
		t.Errorf("palette = %q, want gray", m.palettes[m.palette].Name)
	}

	m = update(t, m, runeKey("m"))
	if want := 16 - panelHeight - 1; m.grid.Height() != want {
		t.Errorf("glyph mode grid height = %d, want %d", m.grid.Height(), want)
	}
}

func TestModel_CloudsIgnoresRingKeys(t *testing.T) {
	m := newTestModel(t, "clouds")
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 12})
	before := m.grid
	m = update(t, m, runeKey("+"))
	if !gridsEqual(before, m.grid) {
		t.Error("+ changed the clouds texture")
	}
	if !strings.Contains(m.info().Param, "seed") {
		t.Errorf("clouds param = %q, want seed", m.info().Param)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, "wood")
	for _, key := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: no command returned", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", key)
		}
	}
}

func gridsEqual(a, b texture.Grid) bool {
	if a.Height() != b.Height() || a.Width() != b.Width() {
		return false
	}
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}
