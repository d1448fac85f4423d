package formatter

import "strings"

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders frac (clamped to 0..1) as a bar of width blocks, e.g.
// ████░░░░. Used to compare days or projects against the largest one.
func RenderBar(frac float64, width int) string {
	frac = min(max(frac, 0), 1)
	width = max(width, 2)

	filled := min(int(frac*float64(width)+0.5), width)
	if frac > 0 && filled == 0 {
		filled = 1
	}
	return StyleBlue.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}
