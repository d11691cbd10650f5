package navgrid

// Grid is a sparse, 1-based table of focusable items addressed by
// (column x, row y). Rows are ragged: any slot may be absent, and
// absent slots mean "no focusable widget here".
//
// Callers must place a valid item at slot (1,1) before handing the
// grid to a Navigator; that slot is the navigator's home position and
// guarantees navigation never starts in an unrecoverable spot.
type Grid struct {
	rows map[int]map[int]Focusable
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{rows: make(map[int]map[int]Focusable)}
}

// GridFromRows builds a grid from dense row slices. rows[0] becomes
// row 1, each slice element column 1..n within it. Nil elements are
// gaps and produce no slot.
func GridFromRows(rows [][]Focusable) *Grid {
	g := NewGrid()
	for i, row := range rows {
		for j, item := range row {
			if item != nil {
				g.Set(j+1, i+1, item)
			}
		}
	}
	return g
}

// Set places an item at slot (x,y), creating the row if needed.
// A nil item removes the slot.
func (g *Grid) Set(x, y int, item Focusable) {
	if item == nil {
		if row, ok := g.rows[y]; ok {
			delete(row, x)
			if len(row) == 0 {
				delete(g.rows, y)
			}
		}
		return
	}
	row, ok := g.rows[y]
	if !ok {
		row = make(map[int]Focusable)
		g.rows[y] = row
	}
	row[x] = item
}

// At returns the item at slot (x,y), or nil if the slot is absent.
func (g *Grid) At(x, y int) Focusable {
	return g.rows[y][x]
}

// HasRow reports whether any slot exists on row y.
func (g *Grid) HasRow(y int) bool {
	return len(g.rows[y]) > 0
}

// MaxRow returns the highest populated row index, or 0 for an empty
// grid.
func (g *Grid) MaxRow() int {
	maxY := 0
	for y, row := range g.rows {
		if len(row) > 0 && y > maxY {
			maxY = y
		}
	}
	return maxY
}

// maxColumn returns the highest populated column index on row y, or 0.
func (g *Grid) maxColumn(y int) int {
	maxX := 0
	for x := range g.rows[y] {
		if x > maxX {
			maxX = x
		}
	}
	return maxX
}

// wrapRow resolves a vertical wrap: moving by dy off the populated
// edge reappears at the farthest populated row in the opposite
// direction. Gaps in the scan are skipped; only the edge stops it.
// Fails when no row other than y exists on that side.
func (g *Grid) wrapRow(y, dy int) (int, bool) {
	target := y
	for ry, row := range g.rows {
		if len(row) == 0 {
			continue
		}
		if dy > 0 && ry < target {
			target = ry
		}
		if dy < 0 && ry > target {
			target = ry
		}
	}
	return target, target != y
}

// wrapColumn resolves a horizontal wrap within row y: moving by dx
// into a gap reappears at the farthest populated column in the
// opposite direction. Fails when no column other than x exists on
// that side.
func (g *Grid) wrapColumn(x, y, dx int) (int, bool) {
	target := x
	for rx := range g.rows[y] {
		if dx > 0 && rx < target {
			target = rx
		}
		if dx < 0 && rx > target {
			target = rx
		}
	}
	return target, target != x
}

// nearestColumn finds the occupied column on row y nearest to x with
// the fixed left-then-right bias: decrement from x to 1, then restart
// from x and increment. Fails when the row is missing or holds no
// items at all.
func (g *Grid) nearestColumn(x, y int) (int, bool) {
	row := g.rows[y]
	if len(row) == 0 {
		return 0, false
	}
	for cx := x; cx >= 1; cx-- {
		if row[cx] != nil {
			return cx, true
		}
	}
	limit := g.maxColumn(y)
	for cx := x + 1; cx <= limit; cx++ {
		if row[cx] != nil {
			return cx, true
		}
	}
	return 0, false
}

// appendRowsOf appends every row of other below this grid's last row,
// preserving the donor's internal row gaps and per-row columns.
func (g *Grid) appendRowsOf(other *Grid) {
	base := g.MaxRow()
	for y, row := range other.rows {
		if len(row) == 0 {
			continue
		}
		g.rows[base+y] = row
	}
}

// appendColumnsOf appends, for each donor row, its columns after the
// end of the matching row here, creating the row when absent. Relative
// column order within each row is preserved.
func (g *Grid) appendColumnsOf(other *Grid) {
	for y, row := range other.rows {
		if len(row) == 0 {
			continue
		}
		dst, ok := g.rows[y]
		if !ok {
			dst = make(map[int]Focusable, len(row))
			g.rows[y] = dst
		}
		base := g.maxColumn(y)
		for x, item := range row {
			dst[base+x] = item
		}
	}
}
