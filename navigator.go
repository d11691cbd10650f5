package navgrid

import (
	"log/slog"
	"os"
)

// navLogLevel controls the log level for navigation diagnostics.
// Default is LevelInfo, which suppresses the per-move Debug trace.
// SetVerbose(true) sets it to LevelDebug.
var navLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for navigation.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		navLogLevel.Set(slog.LevelDebug)
	} else {
		navLogLevel.Set(slog.LevelInfo)
	}
}

// navLogger is the default diagnostics sink, shared by navigators that
// were not given a logger of their own.
var navLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: navLogLevel}))

// Navigator resolves directional focus moves over a sparse Grid.
//
// A navigator owns a 1-based cursor (x,y) and a reference to a
// caller-supplied grid. It is invoked once per discrete directional
// input and fully completes each move (cursor mutated, focus
// notifications sent, repaint requested) before the next one.
//
// A nil grid means "no focus management here": every move reports
// not-handled so an ancestor navigator can claim the input. That is
// the designed delegation path, not an error.
type Navigator struct {
	grid *Grid
	x, y int

	// Per-axis movement gates. A gated axis accepts (consumes) moves
	// but produces no cursor change.
	allowX bool
	allowY bool

	// region is the repaint surrogate; nil means repaint the focused
	// item itself.
	region Focusable

	device   Device
	repaint  Repainter
	gestures GestureSink
	logger   *slog.Logger
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithCursor sets the initial cursor position instead of (1,1).
func WithCursor(x, y int) NavigatorOption {
	return func(n *Navigator) { n.x, n.y = x, y }
}

// WithDevice sets the input-capability query used by FocusInitial and
// Bindings installation.
func WithDevice(d Device) NavigatorOption {
	return func(n *Navigator) { n.device = d }
}

// WithRepainter sets the repaint scheduler notified after each
// accepted move.
func WithRepainter(r Repainter) NavigatorOption {
	return func(n *Navigator) { n.repaint = r }
}

// WithGestureSink sets the sink that receives synthesized activation
// taps.
func WithGestureSink(s GestureSink) NavigatorOption {
	return func(n *Navigator) { n.gestures = s }
}

// WithRepaintRegion sets a surrogate widget whose region is repainted
// instead of the focused item's own.
func WithRepaintRegion(region Focusable) NavigatorOption {
	return func(n *Navigator) { n.region = region }
}

// WithLogger sets the diagnostics sink for this navigator.
func WithLogger(l *slog.Logger) NavigatorOption {
	return func(n *Navigator) { n.logger = l }
}

// NewNavigator creates a navigator over grid with the cursor at (1,1)
// unless WithCursor overrides it. grid may be nil for a container that
// delegates all focus handling to an ancestor.
//
// Slot (1,1) of a non-nil grid is expected to hold a valid item; the
// navigator does not validate this beyond surviving a malformed start.
func NewNavigator(grid *Grid, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		grid:   grid,
		x:      1,
		y:      1,
		allowX: true,
		allowY: true,
		logger: navLogger,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Enabled reports whether the navigator currently owns a grid.
func (n *Navigator) Enabled() bool {
	return n.grid != nil
}

// Cursor returns the current cursor position.
func (n *Navigator) Cursor() (x, y int) {
	return n.x, n.y
}

// Current returns the item at the cursor, or nil when the navigator is
// disabled or the cursor sits on an absent slot.
func (n *Navigator) Current() Focusable {
	if n.grid == nil {
		return nil
	}
	return n.grid.At(n.x, n.y)
}

// SetMovementAllowed gates the horizontal and vertical axes
// independently. Moves along a gated axis are still consumed but leave
// the cursor untouched. Both axes default to allowed.
func (n *Navigator) SetMovementAllowed(horizontal, vertical bool) {
	n.allowX = horizontal
	n.allowY = vertical
}

// Disable permanently turns off focus handling for this navigator by
// discarding its grid. Subsequent moves report not-handled, letting an
// ancestor take over.
func (n *Navigator) Disable() {
	n.grid = nil
}

// FocusInitial puts the initial slot into a visibly focused state by
// issuing a zero-displacement move, which fires its GainFocus
// notification without changing the cursor. It does nothing on hosts
// whose focus follows the pointer rather than a directional pad.
func (n *Navigator) FocusInitial() {
	if n.device != nil && !n.device.HasDirectionalPad() {
		return
	}
	n.Move(0, 0)
}

// Navigate resolves a directional move. See Move.
func (n *Navigator) Navigate(dir NavDirection) bool {
	dx, dy := dir.Delta()
	return n.Move(dx, dy)
}

// Move resolves a focus move by (dx,dy), where at most one component
// is non-zero and each is in {-1,0,1}. The zero displacement re-focuses
// the current slot.
//
// It returns false only when no grid is present, so a caller can offer
// the input to an ancestor navigator. With a grid present the move is
// always consumed, even when no repositioning is possible: a gated
// axis, a cursor stranded on an absent slot, or a true edge with no
// wrap target all leave the cursor unchanged.
//
// When the literal target slot is missing the move searches for a
// landing spot: a fully absent row triggers a vertical wrap to the
// farthest row on the opposite side, a same-column gap in a present
// row steps to that row's nearest occupied column (left first, then
// right), and a sideways gap wraps to the farthest column on the
// opposite side of the row. Landing on the current item again while it
// is marked inactive continues the search with the same displacement,
// which is how items spanning several slots are traversed in one move.
func (n *Navigator) Move(dx, dy int) bool {
	if n.grid == nil {
		return false
	}
	if dx != 0 && !n.allowX {
		return true
	}
	if dy != 0 && !n.allowY {
		return true
	}

	prev := n.grid.At(n.x, n.y)
	if prev == nil {
		// Malformed layout left the cursor on an empty slot. Consume
		// the move; the caller recovers by fixing its grid.
		return true
	}

	startX, startY := n.x, n.y
	visited := make(map[[2]int]bool)

	for {
		current := n.grid.At(n.x, n.y)
		tx, ty := n.x+dx, n.y+dy

		switch {
		case !n.grid.HasRow(ty):
			// Whole target row absent: wrap past the edge.
			wy, ok := n.grid.wrapRow(n.y, dy)
			if !ok {
				n.x, n.y = startX, startY
				return true
			}
			n.y = wy
			if n.grid.At(n.x, n.y) == nil {
				wx, ok := n.grid.nearestColumn(n.x, n.y)
				if !ok {
					n.logger.Error("navgrid: malformed row in grid", "row", n.y)
					n.x, n.y = startX, startY
					return true
				}
				n.x = wx
			}

		case n.grid.At(n.x, ty) == nil:
			// Row exists but has a gap directly in our column: step to
			// its nearest occupied column.
			wx, ok := n.grid.nearestColumn(n.x, ty)
			if !ok {
				n.logger.Error("navgrid: malformed row in grid", "row", ty)
				n.x, n.y = startX, startY
				return true
			}
			n.x, n.y = wx, ty

		case n.grid.At(tx, ty) == nil:
			// Gap to the side within the current row: wrap.
			wx, ok := n.grid.wrapColumn(n.x, n.y, dx)
			if !ok {
				n.x, n.y = startX, startY
				return true
			}
			n.x = wx

		default:
			n.x, n.y = tx, ty
		}

		landed := n.grid.At(n.x, n.y)
		if landed != current || !landed.Inactive() {
			if landed != prev {
				prev.LoseFocus()
			}
			landed.GainFocus()
			n.logger.Debug("navgrid: focus moved", "x", n.x, "y", n.y)
			n.requestRepaint(landed)
			return true
		}

		// Still on the same inactive item. Keep applying the same
		// displacement from the new position, but stop once a position
		// repeats: then the inactive item is the only reachable one.
		pos := [2]int{n.x, n.y}
		if visited[pos] {
			n.x, n.y = startX, startY
			return true
		}
		visited[pos] = true
	}
}

// requestRepaint fires a non-flashing repaint for the navigator's
// region. Fire-and-forget: the navigator never waits on it.
func (n *Navigator) requestRepaint(landed Focusable) {
	if n.repaint == nil {
		return
	}
	region := n.region
	if region == nil {
		region = landed
	}
	n.repaint.RepaintFast(region)
}

// ActivateCurrent synthesizes a tap at the visual center of the
// focused item, the non-pointer confirmation action. It reports
// whether an item was available to activate.
func (n *Navigator) ActivateCurrent() bool {
	item := n.Current()
	if item == nil {
		return false
	}
	if n.gestures != nil {
		n.gestures.TapAt(item.Bounds().Center())
	}
	return true
}

// MergeVertically appends every row of the child's grid below this
// grid's last row, then disables the child so it delegates all further
// input. No-op when the child has no grid (already merged or never a
// navigator) or when this navigator is disabled.
func (n *Navigator) MergeVertically(child *Navigator) {
	if n.grid == nil || child == nil || child.grid == nil {
		return
	}
	n.grid.appendRowsOf(child.grid)
	child.Disable()
}

// MergeHorizontally appends, for each row of the child's grid, its
// columns after the end of the matching row here (creating rows as
// needed, preserving relative column order), then disables the child.
// Used to compose independently-authored sub-layouts without the
// sub-layout knowing its absolute position.
func (n *Navigator) MergeHorizontally(child *Navigator) {
	if n.grid == nil || child == nil || child.grid == nil {
		return
	}
	n.grid.appendColumnsOf(child.grid)
	child.Disable()
}
