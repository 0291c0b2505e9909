package main

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PerformanceCache pools the per-frame buffers of the renderers and
// memoizes lipgloss styles, which are costly to build per cell.
type PerformanceCache struct {
	colorPool   sync.Pool
	styleCache  map[string]lipgloss.Style
	styleMu     sync.RWMutex
	builderPool sync.Pool
}

func NewPerformanceCache() *PerformanceCache {
	return &PerformanceCache{
		styleCache: make(map[string]lipgloss.Style, 256),
		colorPool: sync.Pool{
			New: func() interface{} {
				return make([][]lipgloss.Color, 0)
			},
		},
		builderPool: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			},
		},
	}
}

// GetColorGrid returns a height x width color grid, reusing pooled rows
func (pc *PerformanceCache) GetColorGrid(height, width int) [][]lipgloss.Color {
	colorGrid := pc.colorPool.Get().([][]lipgloss.Color)

	if len(colorGrid) < height {
		colorGrid = make([][]lipgloss.Color, height)
	}

	for y := 0; y < height; y++ {
		if len(colorGrid[y]) < width {
			colorGrid[y] = make([]lipgloss.Color, width)
		}
		colorGrid[y] = colorGrid[y][:width]
		for x := 0; x < width; x++ {
			colorGrid[y][x] = lipgloss.Color("")
		}
	}
	return colorGrid[:height]
}

func (pc *PerformanceCache) ReturnColorGrid(colorGrid [][]lipgloss.Color) {
	pc.colorPool.Put(colorGrid)
}

func (pc *PerformanceCache) GetStyle(fg lipgloss.Color) lipgloss.Style {
	key := string(fg)
	pc.styleMu.RLock()
	style, ok := pc.styleCache[key]
	pc.styleMu.RUnlock()
	if ok {
		return style
	}

	pc.styleMu.Lock()
	defer pc.styleMu.Unlock()
	if style, ok = pc.styleCache[key]; ok {
		return style
	}
	style = lipgloss.NewStyle().Foreground(fg)
	pc.styleCache[key] = style
	return style
}

func (pc *PerformanceCache) GetStyleFGBG(fg, bg lipgloss.Color) lipgloss.Style {
	key := string(fg) + "," + string(bg)
	pc.styleMu.RLock()
	style, ok := pc.styleCache[key]
	pc.styleMu.RUnlock()
	if ok {
		return style
	}

	pc.styleMu.Lock()
	defer pc.styleMu.Unlock()
	if style, ok = pc.styleCache[key]; ok {
		return style
	}
	style = lipgloss.NewStyle().Foreground(fg).Background(bg)
	pc.styleCache[key] = style
	return style
}

func (pc *PerformanceCache) GetBuilder() *strings.Builder {
	sb := pc.builderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

func (pc *PerformanceCache) ReturnBuilder(sb *strings.Builder) {
	pc.builderPool.Put(sb)
}

// BlendColors mixes c1 toward c2; ratio 0 is c1, ratio 1 is c2.
// A color that is not #RRGGBB makes the other one win.
func (pc *PerformanceCache) BlendColors(c1, c2 lipgloss.Color, ratio float64) lipgloss.Color {
	r1, g1, b1, ok1 := parseHex(string(c1))
	r2, g2, b2, ok2 := parseHex(string(c2))

	if !ok1 {
		return c2
	}
	if !ok2 {
		return c1
	}

	r := uint8(float64(r1)*(1-ratio) + float64(r2)*ratio + 0.5)
	g := uint8(float64(g1)*(1-ratio) + float64(g2)*ratio + 0.5)
	b := uint8(float64(b1)*(1-ratio) + float64(b2)*ratio + 0.5)

	return uint8ToHex(r, g, b)
}

func uint8ToHex(r, g, b uint8) lipgloss.Color {
	const hex = "0123456789ABCDEF"
	var res [7]byte
	res[0] = '#'
	res[1] = hex[r>>4]
	res[2] = hex[r&0x0F]
	res[3] = hex[g>>4]
	res[4] = hex[g&0x0F]
	res[5] = hex[b>>4]
	res[6] = hex[b&0x0F]
	return lipgloss.Color(string(res[:]))
}

func parseHex(hex string) (uint8, uint8, uint8, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}

	r := hexToUint8(hex[1], hex[2])
	g := hexToUint8(hex[3], hex[4])
	b := hexToUint8(hex[5], hex[6])

	return r, g, b, true
}

func hexToUint8(h, l byte) uint8 {
	return (unhex(h) << 4) | unhex(l)
}

func unhex(b byte) uint8 {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
