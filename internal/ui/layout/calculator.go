// Package layout provides pure functions for UI dimension calculations.
package layout

import "math"

const (
	// HeaderHeight is the title line plus the blank line under it.
	HeaderHeight = 2

	// PanelBorder is the border thickness of the split panel on each side.
	PanelBorder = 1

	// PanelPadding is the horizontal padding inside the split panel.
	PanelPadding = 1

	// HandleRows is the number of rows that accept separator grabs:
	// the bar itself and the handle row under it.
	HandleRows = 2
)

// PanelWidth returns the width given to the panel style, which covers
// content and padding but not the border.
func PanelWidth(windowWidth int) int {
	return max(windowWidth-2*PanelBorder, 0)
}

// BarWidth returns the number of cells available to the split bar.
func BarWidth(windowWidth int) int {
	return max(windowWidth-2*(PanelBorder+PanelPadding), 0)
}

// BarOrigin returns the 0-based screen cell of the bar's first column.
func BarOrigin() (x, y int) {
	return PanelBorder + PanelPadding, HeaderHeight + PanelBorder
}

// PointerX converts a mouse column to a position along the bar, measured
// from the bar's left edge to the center of the cell.
func PointerX(mouseX, originX int) float64 {
	return float64(mouseX-originX) + 0.5
}

// InHandleRows reports whether a mouse row hits the bar or its handle row.
func InHandleRows(mouseY, originY int) bool {
	return mouseY >= originY && mouseY < originY+HandleRows
}

// SegmentCells converts cut points in [0,1] to per-segment cell counts that
// always add up to width.
func SegmentCells(boundaries []float64, width int) []int {
	if len(boundaries) < 2 || width <= 0 {
		return make([]int, max(len(boundaries)-1, 0))
	}
	cells := make([]int, len(boundaries)-1)
	prev := 0
	for i := 1; i < len(boundaries); i++ {
		end := int(math.Round(boundaries[i] * float64(width)))
		end = min(max(end, prev), width)
		if i == len(boundaries)-1 {
			end = width
		}
		cells[i-1] = end - prev
		prev = end
	}
	return cells
}

// HandleColumn returns the bar column under which a separator's handle is
// drawn.
func HandleColumn(fraction float64, width int) int {
	if width <= 0 {
		return 0
	}
	col := int(math.Floor(fraction * float64(width)))
	return min(max(col, 0), width-1)
}
