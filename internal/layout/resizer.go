package layout

// HandleSlop is how far from the divider, in either direction, a press
// still grabs it.
const HandleSlop = 1

// Resizer is the drag state machine for the panel divider. It is Idle
// until Begin succeeds, Dragging until End.
type Resizer struct {
	bounds         Bounds
	containerLeft  int
	containerWidth int
	width          int
	dragging       bool
}

// NewResizer returns an idle Resizer with the given starting width.
func NewResizer(b Bounds, initial int) *Resizer {
	return &Resizer{bounds: b, width: initial}
}

// SetContainer records the container geometry and re-clamps the width.
func (r *Resizer) SetContainer(left, width int) {
	r.containerLeft = left
	r.containerWidth = width
	r.width = r.bounds.Clamp(r.width, width)
}

// Width is the current panel width.
func (r *Resizer) Width() int { return r.width }

// Dragging reports whether a drag is in progress.
func (r *Resizer) Dragging() bool { return r.dragging }

// OnHandle reports whether x is within the divider's hit-zone.
func (r *Resizer) OnHandle(x int) bool {
	divider := r.containerLeft + r.width
	return x >= divider-HandleSlop && x <= divider+HandleSlop
}

// Begin starts a drag if x is on the handle.
func (r *Resizer) Begin(x int) bool {
	if !r.OnHandle(x) {
		return false
	}
	r.dragging = true
	return true
}

// Move recomputes the width for a pointer at x. It is ignored while idle
// and reports whether the width changed.
func (r *Resizer) Move(x int) bool {
	if !r.dragging {
		return false
	}
	w := r.bounds.Width(x, r.containerLeft, r.containerWidth)
	if w == r.width {
		return false
	}
	r.width = w
	return true
}

// End finishes a drag.
func (r *Resizer) End() {
	r.dragging = false
}

// Nudge changes the width by delta within the bounds.
func (r *Resizer) Nudge(delta int) {
	r.width = r.bounds.Clamp(r.width+delta, r.containerWidth)
}
