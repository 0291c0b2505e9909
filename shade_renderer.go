package main

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"woodgrain/texture"
)

// ShadeRenderer draws a texture with upper half blocks, two grid rows per
// terminal row: the foreground is the top pixel, the background the bottom.
type ShadeRenderer struct {
	cache *PerformanceCache
}

func NewShadeRenderer(cache *PerformanceCache) *ShadeRenderer {
	return &ShadeRenderer{cache: cache}
}

// RowsFor returns how many grid rows fill the given number of terminal rows.
func (sr *ShadeRenderer) RowsFor(termRows int) int {
	return termRows * 2
}

// Render colorizes g with palette p and returns ceil(g.Height()/2) lines.
func (sr *ShadeRenderer) Render(g texture.Grid, p *Palette) string {
	height, width := g.Height(), g.Width()
	if height == 0 || width == 0 {
		return ""
	}

	colorGrid := sr.cache.GetColorGrid(height, width)
	defer sr.cache.ReturnColorGrid(colorGrid)

	// Rows are independent, so colorize them in parallel
	var wg sync.WaitGroup
	for y := range height {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			for x, v := range g[row] {
				colorGrid[row][x] = p.Color(v)
			}
		}(y)
	}
	wg.Wait()

	return sr.gridToStringHalfBlock(colorGrid, width, height)
}

func (sr *ShadeRenderer) gridToStringHalfBlock(colorGrid [][]lipgloss.Color, width, height int) string {
	sb := sr.cache.GetBuilder()
	defer sr.cache.ReturnBuilder(sb)

	for y := 0; y < height; y += 2 {
		x := 0
		for x < width {
			// Group horizontal runs with same FG/BG
			start := x
			fg := colorGrid[y][x]
			bg := lipgloss.Color("")
			if y+1 < height {
				bg = colorGrid[y+1][x]
			}

			x++
			for x < width {
				nextBG := lipgloss.Color("")
				if y+1 < height {
					nextBG = colorGrid[y+1][x]
				}
				if colorGrid[y][x] != fg || nextBG != bg {
					break
				}
				x++
			}

			style := sr.cache.GetStyleFGBG(fg, bg)
			sb.WriteString(style.Render(strings.Repeat("▀", x-start)))
		}
		if y+2 < height {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
