package main

import (
	"strings"

	"woodgrain/texture"
)

// GlyphRenderer draws one grid row per terminal row using a density ramp
// of block characters, colored by the palette.
type GlyphRenderer struct {
	cache *PerformanceCache
}

func NewGlyphRenderer(cache *PerformanceCache) *GlyphRenderer {
	return &GlyphRenderer{cache: cache}
}

func (gr *GlyphRenderer) RowsFor(termRows int) int {
	return termRows
}

// Render returns g.Height() lines of g.Width() glyphs.
func (gr *GlyphRenderer) Render(g texture.Grid, p *Palette) string {
	sb := gr.cache.GetBuilder()
	defer gr.cache.ReturnBuilder(sb)

	var run strings.Builder
	for y, row := range g {
		x := 0
		for x < len(row) {
			// Runs share one style and one escape sequence
			color := p.Color(row[x])
			run.Reset()
			for x < len(row) && p.Color(row[x]) == color {
				run.WriteRune(getCharForIntensity(row[x]))
				x++
			}
			sb.WriteString(gr.cache.GetStyle(color).Render(run.String()))
		}
		if y < len(g)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// getCharForIntensity returns a character based on intensity level
func getCharForIntensity(intensity float64) rune {
	if intensity > 0.85 {
		return '█' // Solid
	} else if intensity > 0.65 {
		return '▓' // Dense
	} else if intensity > 0.45 {
		return '▒' // Medium
	} else if intensity > 0.25 {
		return '░' // Light
	} else if intensity > 0.10 {
		return '·' // Dot
	}
	return ' '
}
