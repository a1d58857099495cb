package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheet/internal/ui/theme"
)

// CapacityBar shows how much of a frame's page budget its tasks use.
type CapacityBar struct {
	Label    string
	Used     float64
	Capacity float64
	Width    int
}

// NewCapacityBar creates a capacity bar.
func NewCapacityBar(label string, used, capacity float64, width int) CapacityBar {
	return CapacityBar{Label: label, Used: used, Capacity: capacity, Width: width}
}

// Ratio is Used over Capacity; a non-positive capacity counts as full.
func (b CapacityBar) Ratio() float64 {
	if b.Capacity <= 0 {
		return 1
	}
	return b.Used / b.Capacity
}

// View renders the bar.
func (b CapacityBar) View() string {
	var result string

	if b.Label != "" {
		result += theme.Body.Render(b.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 6 // "  100%"

	barWidth := b.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	ratio := b.Ratio()
	filled := int(float64(barWidth) * ratio)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := theme.CapacityFilled
	if ratio > 1 {
		fill = theme.CapacityOver
	}
	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.CapacityEmpty.Render(strings.Repeat(" ", empty))

	result += theme.Subtitle.Render(fmt.Sprintf("  %d%%", int(ratio*100)))
	return result
}
