package main

import "github.com/charmbracelet/lipgloss"

// paletteLevels is how many distinct colors an intensity is quantized to.
// Fewer levels mean longer same-color runs and fewer cached styles.
const paletteLevels = 32

// Palette maps an intensity in [0, 1] to a terminal color.
type Palette struct {
	Name   string
	colors [paletteLevels]lipgloss.Color
}

var paletteStops = []struct {
	name        string
	dark, light lipgloss.Color
}{
	{"wood", lipgloss.Color("#2B1608"), lipgloss.Color("#E0B47A")},
	{"gray", lipgloss.Color("#000000"), lipgloss.Color("#FFFFFF")},
}

// NewPalettes builds every palette ramp once.
func NewPalettes(cache *PerformanceCache) []*Palette {
	palettes := make([]*Palette, 0, len(paletteStops))
	for _, stop := range paletteStops {
		p := &Palette{Name: stop.name}
		for i := range p.colors {
			ratio := float64(i) / float64(paletteLevels-1)
			p.colors[i] = cache.BlendColors(stop.dark, stop.light, ratio)
		}
		palettes = append(palettes, p)
	}
	return palettes
}

// Color returns the ramp color for intensity v. Out of range values are
// clamped to the ends of the ramp.
func (p *Palette) Color(v float64) lipgloss.Color {
	return p.colors[level(v)]
}

func level(v float64) int {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return paletteLevels - 1
	}
	return int(v*float64(paletteLevels-1) + 0.5)
}
