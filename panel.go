package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"woodgrain/texture"
)

// TextureInfo describes the texture currently on screen
type TextureInfo struct {
	Generator string
	Param     string // "rings 12.0", "veins 5.0", "seed 123"
	Offset    string
	Stats     texture.Stats
	Bands     int
	Palette   string
	Mode      string
	Err       error
}

// panelHeight is the number of lines RenderPanel produces.
const panelHeight = 7

// RenderPanel creates the info section above the texture
func RenderPanel(info TextureInfo, width int) string {
	var output strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E0B47A")).
		Background(lipgloss.Color("#2B1608")).
		Width(width).
		Align(lipgloss.Center)

	output.WriteString(titleStyle.Render("≋ WOOD GRAIN ≋"))
	output.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#C08040")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	line := func(label, value string) {
		output.WriteString(labelStyle.Render(label))
		output.WriteString(valueStyle.Render(truncateString(value, width-len(label))))
		output.WriteString("\n")
	}

	line("▶ Generator: ", fmt.Sprintf("%s (%s, offset %s)", info.Generator, info.Param, info.Offset))
	line("◆ Range:     ", fmt.Sprintf("min %.3f  max %.3f  mean %.3f  σ %.3f",
		info.Stats.Min, info.Stats.Max, info.Stats.Mean, info.Stats.StdDev))
	line("≡ Bands:     ", fmt.Sprintf("%d across the middle row", info.Bands))
	line("◐ View:      ", fmt.Sprintf("%s palette, %s", info.Palette, info.Mode))

	if info.Err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3030")).Bold(true)
		output.WriteString(errStyle.Render(truncateString("✗ "+info.Err.Error(), width)))
	}
	output.WriteString("\n")

	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#C08040"))
	output.WriteString(separatorStyle.Render(strings.Repeat("═", max(width-2, 0))))
	output.WriteString("\n")

	return output.String()
}

func truncateString(s string, maxLen int) string {
	if maxLen < 4 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
