// Package layout computes the width of the side panel and runs the
// drag-to-resize interaction on its divider.
package layout

// Bounds limit the panel width: at least Min, and at most the container
// width minus Reserve, which is kept for the viewport.
type Bounds struct {
	Min     int
	Reserve int
}

// PixelBounds are the bounds for a pixel-measured container.
var PixelBounds = Bounds{Min: 350, Reserve: 400}

// CellBounds are the bounds used by the terminal UI, in columns.
var CellBounds = Bounds{Min: 30, Reserve: 40}

// InitialPixelWidth is the panel width before any drag.
const InitialPixelWidth = 450

// ComputeWidth returns the panel width for a pointer at pointerX over a
// container starting at containerLeft, using PixelBounds.
func ComputeWidth(pointerX, containerLeft, containerWidth int) int {
	return PixelBounds.Width(pointerX, containerLeft, containerWidth)
}

// Width is ComputeWidth for arbitrary bounds.
func (b Bounds) Width(pointerX, containerLeft, containerWidth int) int {
	return b.Clamp(pointerX-containerLeft, containerWidth)
}

// Clamp limits w to the bounds for containerWidth. When the container is
// too narrow for both limits, Min wins.
func (b Bounds) Clamp(w, containerWidth int) int {
	return max(b.Min, min(w, containerWidth-b.Reserve))
}
