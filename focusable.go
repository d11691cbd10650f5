package navgrid

// NavDirection represents a navigation direction for focus movement.
type NavDirection uint8

const (
	NavUp NavDirection = iota
	NavDown
	NavLeft
	NavRight
)

// String returns a human-readable name for the navigation direction.
func (d NavDirection) String() string {
	switch d {
	case NavUp:
		return "Up"
	case NavDown:
		return "Down"
	case NavLeft:
		return "Left"
	case NavRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction (Up<->Down, Left<->Right).
func (d NavDirection) Opposite() NavDirection {
	switch d {
	case NavUp:
		return NavDown
	case NavDown:
		return NavUp
	case NavLeft:
		return NavRight
	case NavRight:
		return NavLeft
	default:
		return d
	}
}

// IsVertical returns true for Up/Down directions.
func (d NavDirection) IsVertical() bool {
	return d == NavUp || d == NavDown
}

// IsHorizontal returns true for Left/Right directions.
func (d NavDirection) IsHorizontal() bool {
	return d == NavLeft || d == NavRight
}

// Delta returns the cursor displacement for the direction.
// Exactly one component is non-zero; y grows downward.
func (d NavDirection) Delta() (dx, dy int) {
	switch d {
	case NavUp:
		return 0, -1
	case NavDown:
		return 0, 1
	case NavLeft:
		return -1, 0
	case NavRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Focusable is implemented by items that can occupy a grid slot and
// receive focus. The navigator holds non-owning references; ownership
// stays with the surrounding widget tree.
//
// An item may appear in several slots to span cells (e.g. a tall
// sidebar entry next to a stack of buttons). Marking such an item
// Inactive makes the navigator pass through its extra slots in a
// single move instead of stopping on each one.
type Focusable interface {
	// GainFocus notifies the item that it became the current selection.
	GainFocus()

	// LoseFocus notifies the item that it stopped being the selection.
	LoseFocus()

	// Inactive reports whether the item is a skippable landing spot:
	// it occupies a slot but is passed over when it is already the
	// current item, unless it is the only reachable item for a move.
	Inactive() bool

	// Bounds returns the item's externally-owned bounding box, used to
	// synthesize activation taps at its visual center.
	Bounds() Rect
}

// Device answers input-capability queries for the host. It gates
// whether directional bindings are installed at all, and whether one
// direction is omitted on constrained hosts.
type Device interface {
	// HasDirectionalPad reports whether the host has directional input
	// (arrow keys, d-pad). Without one, focus follows the pointer and
	// the navigator stays passive.
	HasDirectionalPad() bool

	// HasFewKeys reports whether the host has so few physical keys
	// that some bindings must be left free for other duties.
	HasFewKeys() bool
}

// Repainter schedules redraws after a focus change. RepaintFast must
// be non-flashing and fire-and-forget: the navigator does not wait for
// the repaint to complete.
type Repainter interface {
	// RepaintFast marks the region owning the given widget dirty.
	RepaintFast(region Focusable)
}

// GestureSink dispatches synthesized interactions to the presentation
// layer.
type GestureSink interface {
	// TapAt requests a tap gesture at the given point.
	TapAt(p Vec2)
}
