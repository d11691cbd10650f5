package navgrid

import "testing"

// stubItem is a minimal Focusable for testing that records its focus
// notifications.
type stubItem struct {
	name     string
	inactive bool
	bounds   Rect
	gained   int
	lost     int
}

func (s *stubItem) GainFocus()     { s.gained++ }
func (s *stubItem) LoseFocus()     { s.lost++ }
func (s *stubItem) Inactive() bool { return s.inactive }
func (s *stubItem) Bounds() Rect   { return s.bounds }

func item(name string) *stubItem {
	return &stubItem{name: name}
}

type stubDevice struct {
	dpad    bool
	fewKeys bool
}

func (d stubDevice) HasDirectionalPad() bool { return d.dpad }
func (d stubDevice) HasFewKeys() bool        { return d.fewKeys }

// recordingRepainter counts RepaintFast requests.
type recordingRepainter struct {
	count int
	last  Focusable
}

func (r *recordingRepainter) RepaintFast(region Focusable) {
	r.count++
	r.last = region
}

// recordingSink collects synthesized taps.
type recordingSink struct {
	taps []Vec2
}

func (r *recordingSink) TapAt(p Vec2) {
	r.taps = append(r.taps, p)
}

func assertCursor(t *testing.T, nav *Navigator, wantX, wantY int) {
	t.Helper()
	x, y := nav.Cursor()
	if x != wantX || y != wantY {
		t.Errorf("Expected cursor (%d,%d), got (%d,%d)", wantX, wantY, x, y)
	}
}

func TestNavigator_MoveRight(t *testing.T) {
	a, b, c := item("A"), item("B"), item("C")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b},
		{c},
	}))

	if !nav.Move(1, 0) {
		t.Fatal("Move(1,0) should be handled")
	}
	assertCursor(t, nav, 2, 1)
	if b.gained != 1 {
		t.Errorf("Expected B gained=1, got %d", b.gained)
	}
	if a.lost != 1 {
		t.Errorf("Expected A lost=1, got %d", a.lost)
	}
	if nav.Current() != b {
		t.Error("Expected Current() to return B")
	}
}

func TestNavigator_MoveDownDirectTarget(t *testing.T) {
	a, b, c := item("A"), item("B"), item("C")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b},
		{c},
	}))

	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 1, 2)
	if c.gained != 1 || a.lost != 1 {
		t.Errorf("Expected C gained=1 and A lost=1, got gained=%d lost=%d", c.gained, a.lost)
	}
}

func TestNavigator_MoveDownStepsToNearestColumn(t *testing.T) {
	// Row 2 has no slot under column 1; the step search lands on its
	// only occupied column.
	a, b, d := item("A"), item("B"), item("D")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b},
		{nil, d},
	}))

	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 2, 2)
	if d.gained != 1 {
		t.Errorf("Expected D gained=1, got %d", d.gained)
	}
}

func TestNavigator_VerticalStepPrefersLeft(t *testing.T) {
	// From column 2, row 2 offers columns 1 and 3 at equal distance.
	// The fixed tie-break picks the left one.
	a, b, p, q := item("A"), item("B"), item("P"), item("Q")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b},
		{p, nil, q},
	}), WithCursor(2, 1))

	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 1, 2)
	if p.gained != 1 || q.gained != 0 {
		t.Errorf("Expected P gained=1 and Q gained=0, got P=%d Q=%d", p.gained, q.gained)
	}
}

func TestNavigator_VerticalStepFallsBackRight(t *testing.T) {
	// Nothing at or left of the starting column on row 2: the search
	// restarts rightward.
	a, b, q := item("A"), item("B"), item("Q")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b},
		{nil, nil, q},
	}), WithCursor(2, 1))

	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 3, 2)
	if q.gained != 1 {
		t.Errorf("Expected Q gained=1, got %d", q.gained)
	}
}

func TestNavigator_HorizontalWrap(t *testing.T) {
	a, b, c := item("A"), item("B"), item("C")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b, c},
	}), WithCursor(3, 1))
	nav.SetMovementAllowed(true, false)

	if !nav.Move(1, 0) {
		t.Fatal("Move(1,0) should be handled")
	}
	assertCursor(t, nav, 1, 1)

	// Repeated right moves cycle 1 -> 2 -> 3 -> 1, never out of range.
	want := []int{2, 3, 1, 2, 3, 1}
	for i, wx := range want {
		if !nav.Move(1, 0) {
			t.Fatalf("Move %d should be handled", i)
		}
		x, y := nav.Cursor()
		if x != wx || y != 1 {
			t.Fatalf("Move %d: expected cursor (%d,1), got (%d,%d)", i, wx, x, y)
		}
	}
}

func TestNavigator_HorizontalWrapLeft(t *testing.T) {
	a, b, c := item("A"), item("B"), item("C")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b, c},
	}))

	if !nav.Move(-1, 0) {
		t.Fatal("Move(-1,0) should be handled")
	}
	assertCursor(t, nav, 3, 1)
	if c.gained != 1 || a.lost != 1 {
		t.Errorf("Expected C gained=1 and A lost=1, got gained=%d lost=%d", c.gained, a.lost)
	}
}

func TestNavigator_InnerHorizontalGapDoesNotSearchForward(t *testing.T) {
	// The gap policy only wraps backwards: a gap between A and C stops
	// rightward movement rather than jumping over it.
	a, c := item("A"), item("C")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, nil, c},
	}))

	if !nav.Move(1, 0) {
		t.Fatal("Move(1,0) should still be handled")
	}
	assertCursor(t, nav, 1, 1)
	if a.gained != 0 || a.lost != 0 || c.gained != 0 {
		t.Error("Expected no focus notifications on a failed wrap")
	}
}

func TestNavigator_VerticalWrap(t *testing.T) {
	a, b, c := item("A"), item("B"), item("C")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a},
		{b},
		{c},
	}), WithCursor(1, 3))

	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 1, 1)

	if !nav.Move(0, -1) {
		t.Fatal("Move(0,-1) should be handled")
	}
	assertCursor(t, nav, 1, 3)
}

func TestNavigator_VerticalWrapAcrossRowGap(t *testing.T) {
	// Rows 1 and 3 exist, row 2 does not. Moving up from row 1 wraps
	// to the farthest row below; moving down from row 1 hits the
	// absent row 2 and finds no wrap target above, so nothing moves.
	a, c := item("A"), item("C")
	grid := NewGrid()
	grid.Set(1, 1, a)
	grid.Set(1, 3, c)
	nav := NewNavigator(grid)

	if !nav.Move(0, -1) {
		t.Fatal("Move(0,-1) should be handled")
	}
	assertCursor(t, nav, 1, 3)

	nav = NewNavigator(grid)
	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 1, 1)
	if c.gained != 1 {
		t.Errorf("Expected C gained only from the wrap move, got %d", c.gained)
	}
}

func TestNavigator_SingleRowVerticalMoveNoChange(t *testing.T) {
	a, b := item("A"), item("B")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b},
	}))

	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 1, 1)
	if a.gained != 0 || a.lost != 0 {
		t.Error("Expected no notifications when no vertical wrap target exists")
	}
}

func TestNavigator_InverseMovesReturn(t *testing.T) {
	a, b, c, d := item("A"), item("B"), item("C"), item("D")
	grid := GridFromRows([][]Focusable{
		{a, b},
		{c, d},
	})

	cases := []struct {
		name   string
		dx, dy int
	}{
		{"horizontal", 1, 0},
		{"vertical", 0, 1},
	}
	for _, tc := range cases {
		nav := NewNavigator(grid)
		if !nav.Move(tc.dx, tc.dy) || !nav.Move(-tc.dx, -tc.dy) {
			t.Fatalf("%s: both moves should be handled", tc.name)
		}
		x, y := nav.Cursor()
		if x != 1 || y != 1 {
			t.Errorf("%s: expected cursor back at (1,1), got (%d,%d)", tc.name, x, y)
		}
	}
}

func TestNavigator_FocusInitial(t *testing.T) {
	a := item("A")
	nav := NewNavigator(GridFromRows([][]Focusable{{a}}),
		WithDevice(stubDevice{dpad: true}))

	nav.FocusInitial()
	if a.gained != 1 {
		t.Errorf("Expected exactly one GainFocus, got %d", a.gained)
	}
	if a.lost != 0 {
		t.Errorf("Expected no LoseFocus, got %d", a.lost)
	}
	assertCursor(t, nav, 1, 1)
}

func TestNavigator_FocusInitialPointerHost(t *testing.T) {
	a := item("A")
	nav := NewNavigator(GridFromRows([][]Focusable{{a}}),
		WithDevice(stubDevice{dpad: false}))

	nav.FocusInitial()
	if a.gained != 0 {
		t.Errorf("Expected no focus on a pointer-driven host, got gained=%d", a.gained)
	}
}

func TestNavigator_FocusInitialNilDevice(t *testing.T) {
	a := item("A")
	nav := NewNavigator(GridFromRows([][]Focusable{{a}}))

	nav.FocusInitial()
	if a.gained != 1 {
		t.Errorf("Expected GainFocus without a device, got %d", a.gained)
	}
}

func TestNavigator_InactiveSpanTraversal(t *testing.T) {
	// S spans rows 1-2 in column 1 and is inactive, so a single down
	// press from its top slot walks through to B.
	s := &stubItem{name: "S", inactive: true}
	b := item("B")
	grid := NewGrid()
	grid.Set(1, 1, s)
	grid.Set(1, 2, s)
	grid.Set(1, 3, b)
	nav := NewNavigator(grid)

	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 1, 3)
	if b.gained != 1 {
		t.Errorf("Expected B gained=1, got %d", b.gained)
	}
	if s.lost != 1 {
		t.Errorf("Expected S lost=1, got %d", s.lost)
	}
}

func TestNavigator_InactiveOnlyReachable(t *testing.T) {
	// The inactive item occupies every slot: the move is consumed but
	// nothing changes and nothing is notified.
	s := &stubItem{name: "S", inactive: true}
	grid := NewGrid()
	grid.Set(1, 1, s)
	grid.Set(1, 2, s)
	nav := NewNavigator(grid)

	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 1, 1)
	if s.gained != 0 || s.lost != 0 {
		t.Errorf("Expected no notification pair, got gained=%d lost=%d", s.gained, s.lost)
	}
}

func TestNavigator_LandingOnDifferentInactiveAccepts(t *testing.T) {
	// Inactive only skips when the item is already current; arriving
	// from elsewhere lands on it normally.
	a := item("A")
	s := &stubItem{name: "S", inactive: true}
	nav := NewNavigator(GridFromRows([][]Focusable{{a, s}}))

	if !nav.Move(1, 0) {
		t.Fatal("Move(1,0) should be handled")
	}
	assertCursor(t, nav, 2, 1)
	if s.gained != 1 || a.lost != 1 {
		t.Errorf("Expected S gained=1 and A lost=1, got gained=%d lost=%d", s.gained, a.lost)
	}
}

func TestNavigator_ZeroMoveOnInactiveCurrent(t *testing.T) {
	s := &stubItem{name: "S", inactive: true}
	nav := NewNavigator(GridFromRows([][]Focusable{{s}}))

	if !nav.Move(0, 0) {
		t.Fatal("Move(0,0) should be handled")
	}
	assertCursor(t, nav, 1, 1)
	if s.gained != 0 {
		t.Errorf("Expected no GainFocus for an inactive current item, got %d", s.gained)
	}
}

func TestNavigator_MovementGates(t *testing.T) {
	a, b, c := item("A"), item("B"), item("C")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b},
		{c},
	}))
	nav.SetMovementAllowed(false, true)

	if !nav.Move(1, 0) {
		t.Fatal("Gated move should still be handled")
	}
	assertCursor(t, nav, 1, 1)
	if b.gained != 0 {
		t.Error("Expected no focus change on a gated axis")
	}

	// The vertical axis stays live.
	if !nav.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	assertCursor(t, nav, 1, 2)
}

func TestNavigator_MalformedCursorConsumed(t *testing.T) {
	a := item("A")
	nav := NewNavigator(GridFromRows([][]Focusable{{a}}), WithCursor(5, 5))

	if !nav.Move(0, 1) {
		t.Fatal("Move on a malformed cursor should still be handled")
	}
	assertCursor(t, nav, 5, 5)
	if a.gained != 0 {
		t.Error("Expected no notifications from a malformed cursor")
	}
}

func TestNavigator_NoGridDelegates(t *testing.T) {
	nav := NewNavigator(nil)

	if nav.Move(0, 1) {
		t.Error("Expected Move to report not-handled without a grid")
	}
	if nav.Navigate(NavDown) {
		t.Error("Expected Navigate to report not-handled without a grid")
	}
	if nav.Current() != nil {
		t.Error("Expected Current() to return nil without a grid")
	}
	if nav.ActivateCurrent() {
		t.Error("Expected ActivateCurrent to report no item")
	}
	nav.FocusInitial() // must not panic
	if nav.Enabled() {
		t.Error("Expected Enabled() to be false")
	}
}

func TestNavigator_Disable(t *testing.T) {
	a, b := item("A"), item("B")
	nav := NewNavigator(GridFromRows([][]Focusable{{a, b}}))

	nav.Disable()
	if nav.Move(1, 0) {
		t.Error("Expected not-handled after Disable")
	}
	if nav.Current() != nil {
		t.Error("Expected Current() nil after Disable")
	}
}

func TestNavigator_CursorAlwaysOnPresentSlot(t *testing.T) {
	a, b, c, d, e := item("A"), item("B"), item("C"), item("D"), item("E")
	nav := NewNavigator(GridFromRows([][]Focusable{
		{a, b, c},
		{d},
		{nil, e},
	}))

	moves := []NavDirection{
		NavDown, NavDown, NavRight, NavUp, NavLeft, NavLeft,
		NavDown, NavRight, NavRight, NavUp, NavUp, NavDown,
	}
	for i, dir := range moves {
		if !nav.Navigate(dir) {
			t.Fatalf("move %d (%s) should be handled", i, dir)
		}
		if nav.Current() == nil {
			x, y := nav.Cursor()
			t.Fatalf("move %d (%s): cursor (%d,%d) addresses an absent slot", i, dir, x, y)
		}
	}
}

func TestNavigator_RepaintOnAcceptedMoveOnly(t *testing.T) {
	a, b := item("A"), item("B")
	painter := &recordingRepainter{}
	nav := NewNavigator(GridFromRows([][]Focusable{{a, b}}),
		WithRepainter(painter))

	nav.Move(1, 0)
	if painter.count != 1 {
		t.Fatalf("Expected 1 repaint after an accepted move, got %d", painter.count)
	}
	if painter.last != b {
		t.Error("Expected the focused item as the repaint region")
	}

	// A vertical move with no wrap target changes nothing and repaints
	// nothing.
	nav.Move(0, 1)
	if painter.count != 1 {
		t.Errorf("Expected no repaint after a failed move, got %d", painter.count)
	}
}

func TestNavigator_RepaintSurrogateRegion(t *testing.T) {
	a, b := item("A"), item("B")
	region := item("owner")
	painter := &recordingRepainter{}
	nav := NewNavigator(GridFromRows([][]Focusable{{a, b}}),
		WithRepainter(painter),
		WithRepaintRegion(region))

	nav.Move(1, 0)
	if painter.last != region {
		t.Error("Expected the surrogate region to be repainted")
	}
}

func TestNavigator_ActivateCurrent(t *testing.T) {
	a := &stubItem{name: "A", bounds: Rect{X: 10, Y: 20, W: 30, H: 40}}
	sink := &recordingSink{}
	nav := NewNavigator(GridFromRows([][]Focusable{{a}}),
		WithGestureSink(sink))

	if !nav.ActivateCurrent() {
		t.Fatal("Expected ActivateCurrent to report an item")
	}
	if len(sink.taps) != 1 {
		t.Fatalf("Expected 1 tap, got %d", len(sink.taps))
	}
	want := Vec2{X: 25, Y: 40}
	if sink.taps[0] != want {
		t.Errorf("Expected tap at %+v, got %+v", want, sink.taps[0])
	}
}

func TestNavigator_MergeHorizontallyPreservesOrder(t *testing.T) {
	a, x := item("A"), item("X")
	parent := NewNavigator(GridFromRows([][]Focusable{{a}}))
	child := NewNavigator(GridFromRows([][]Focusable{{x}}))

	parent.MergeHorizontally(child)

	if parent.Current() != a {
		t.Error("Expected A to stay at (1,1)")
	}
	if !parent.Move(1, 0) {
		t.Fatal("Move(1,0) should be handled")
	}
	if parent.Current() != x {
		t.Error("Expected X appended after A, never before")
	}
	if child.Enabled() {
		t.Error("Expected the child to be disabled after the merge")
	}
	if child.Move(1, 0) {
		t.Error("Expected the merged child to delegate all moves")
	}
}

func TestNavigator_MergeHorizontallyCreatesRow(t *testing.T) {
	a, x := item("A"), item("X")
	parent := NewNavigator(GridFromRows([][]Focusable{{a}}))

	childGrid := NewGrid()
	childGrid.Set(1, 2, x)
	child := NewNavigator(childGrid)

	parent.MergeHorizontally(child)

	if !parent.Move(0, 1) {
		t.Fatal("Move(0,1) should be handled")
	}
	if parent.Current() != x {
		t.Error("Expected X on the newly created row 2")
	}
	assertCursor(t, parent, 1, 2)
}

func TestNavigator_MergeVerticallyAppendsRows(t *testing.T) {
	a, b, c, d := item("A"), item("B"), item("C"), item("D")
	parent := NewNavigator(GridFromRows([][]Focusable{
		{a},
		{b},
	}))

	childGrid := NewGrid()
	childGrid.Set(1, 1, c)
	childGrid.Set(1, 3, d) // internal row gap survives the merge
	child := NewNavigator(childGrid)

	parent.MergeVertically(child)

	if got := parent.grid.At(1, 3); got != c {
		t.Errorf("Expected C at row 3, got %v", got)
	}
	if got := parent.grid.At(1, 5); got != d {
		t.Errorf("Expected D at row 5, got %v", got)
	}
	if child.Enabled() {
		t.Error("Expected the child to be disabled after the merge")
	}

	// Navigation now crosses the seam.
	parent.Move(0, 1)
	parent.Move(0, 1)
	if parent.Current() != c {
		t.Error("Expected two down moves to reach the merged C")
	}
}

func TestNavigator_MergeNoOpForDisabledChild(t *testing.T) {
	a := item("A")
	parent := NewNavigator(GridFromRows([][]Focusable{{a}}))
	child := NewNavigator(nil)

	parent.MergeVertically(child)
	parent.MergeHorizontally(child)
	parent.MergeVertically(nil)

	if parent.grid.MaxRow() != 1 {
		t.Error("Expected the parent grid to be untouched")
	}
}

func TestNavigator_MergeIntoDisabledReceiver(t *testing.T) {
	x := item("X")
	parent := NewNavigator(nil)
	child := NewNavigator(GridFromRows([][]Focusable{{x}}))

	parent.MergeVertically(child)

	if !child.Enabled() {
		t.Error("Expected the child to keep its grid when the receiver is disabled")
	}
}
