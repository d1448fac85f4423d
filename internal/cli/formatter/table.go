package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line. Every
// column is left aligned.
func RenderTable(headers []string, rows [][]string) string {
	return renderTable(headers, rows, nil)
}

// RenderNumericTable is RenderTable with the given columns right aligned.
func RenderNumericTable(headers []string, rows [][]string, rightCols ...int) string {
	right := make(map[int]bool, len(rightCols))
	for _, c := range rightCols {
		right[c] = true
	}
	return renderTable(headers, rows, right)
}

func renderTable(headers []string, rows [][]string, right map[int]bool) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	// Widths are measured on visible text so styled cells line up.
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			last := i == cols-1
			switch {
			case right[i]:
				b.WriteString(pad + style(cell))
			case last:
				b.WriteString(style(cell))
			default:
				b.WriteString(style(cell) + pad)
			}
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
