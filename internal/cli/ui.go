package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pipeloop/canvas"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("238")
	colorWhite  = lipgloss.Color("255")
)

var (
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray)
	styleNumber = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

	// raster glyph styles, keyed by canvas.Cell.Glyph
	glyphStyles = map[byte]lipgloss.Style{
		'.': lipgloss.NewStyle().Foreground(colorDim),
		'I': lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		'#': lipgloss.NewStyle().Foreground(colorCyan),
		'o': lipgloss.NewStyle().Foreground(colorCyan),
		'S': lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
	}
)

// printMetric writes one "label  value" line.
func printMetric(w io.Writer, label string, value int) {
	fmt.Fprintf(w, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-9s", label)), styleNumber.Render(fmt.Sprint(value)))
}

// printTitle writes a bold heading line.
func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

// renderCanvas draws the raster, styling runs of equal glyphs when color is set.
func renderCanvas(c *canvas.Canvas, color bool) string {
	if !color {
		return c.String()
	}
	lines := c.Lines()
	for i, line := range lines {
		var sb strings.Builder
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end] == line[start] {
				end++
			}
			run := line[start:end]
			if st, ok := glyphStyles[line[start]]; ok {
				sb.WriteString(st.Render(run))
			} else {
				sb.WriteString(run)
			}
			start = end
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
