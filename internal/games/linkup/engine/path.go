package engine

import "fmt"

// Point is a grid coordinate. Path waypoints one step outside the board
// (the implicit border ring) use row/col values of -1, Rows or Cols.
type Point struct {
	Row int
	Col int
}

// Pt is a convenience constructor for Point.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Path is an ordered sequence of waypoints from source to destination:
// the two endpoints plus any corner points. Consecutive waypoints always
// share a row or a column. Paths are feedback for drawing the connecting
// line; they are never persisted.
type Path []Point

// Bends returns the number of 90-degree direction changes along the path.
func (p Path) Bends() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 2
}

// Rules configures the connectivity check. The genre convention is at
// most two bends with the one-slot empty ring around the board usable;
// both are kept configurable.
type Rules struct {
	// MaxBends is the bend budget; values above 2 behave like 2.
	MaxBends int
	// OuterBorder allows paths to route through the implicit empty ring
	// one slot outside the grid.
	OuterBorder bool
}

// DefaultRules returns the standard link-up ruleset.
func DefaultRules() Rules {
	return Rules{MaxBends: 2, OuterBorder: true}
}

// CanConnect reports whether the tiles at a and b may be paired: both on
// the board, distinct, non-empty, of equal type, and joined by a path of
// straight segments through empty slots within the bend budget.
func (r Rules) CanConnect(g *Grid, a, b Point) bool {
	_, ok := r.FindPath(g, a, b)
	return ok
}

// FindPath returns one valid connecting path, not necessarily the
// shortest. Straight paths are tried before one-corner paths, which are
// tried before two-corner paths, so the returned path is reasonable to
// draw, but any path within the bend budget is an acceptable verdict.
func (r Rules) FindPath(g *Grid, a, b Point) (Path, bool) {
	if !g.InBounds(a.Row, a.Col) || !g.InBounds(b.Row, b.Col) {
		return nil, false
	}
	if a == b {
		return nil, false
	}
	ta, tb := g.TypeAt(a.Row, a.Col), g.TypeAt(b.Row, b.Col)
	if ta == TypeEmpty || ta != tb {
		return nil, false
	}

	if p, ok := r.straight(g, a, b); ok {
		return p, true
	}
	if r.MaxBends >= 1 {
		if p, ok := r.oneCorner(g, a, b); ok {
			return p, true
		}
	}
	if r.MaxBends >= 2 {
		if p, ok := r.twoCorners(g, a, b); ok {
			return p, true
		}
	}
	return nil, false
}

// straight matches endpoints on a shared row or column with every slot
// strictly between them empty.
func (r Rules) straight(g *Grid, a, b Point) (Path, bool) {
	if a.Row != b.Row && a.Col != b.Col {
		return nil, false
	}
	if !r.segmentClear(g, a, b) {
		return nil, false
	}
	return Path{a, b}, true
}

// oneCorner tries the two L-shaped paths through the corners that share
// one axis with each endpoint.
func (r Rules) oneCorner(g *Grid, a, b Point) (Path, bool) {
	for _, corner := range [2]Point{Pt(a.Row, b.Col), Pt(b.Row, a.Col)} {
		if !r.traversable(g, corner) {
			continue
		}
		if r.segmentClear(g, a, corner) && r.segmentClear(g, corner, b) {
			return Path{a, corner, b}, true
		}
	}
	return nil, false
}

// twoCorners scans every row and every column as a candidate middle axis
// for a Z- or U-shaped path. With the outer border enabled the scan
// extends one slot beyond each edge. O(rows+cols) corner pairs.
func (r Rules) twoCorners(g *Grid, a, b Point) (Path, bool) {
	lo := 0
	if r.OuterBorder {
		lo = -1
	}

	// Middle segment horizontal: corners share a row.
	for row := lo; row <= g.Rows()-1-lo; row++ {
		if row == a.Row || row == b.Row {
			continue // covered by the one-corner shapes
		}
		c1, c2 := Pt(row, a.Col), Pt(row, b.Col)
		if c1 == c2 {
			continue
		}
		if !r.traversable(g, c1) || !r.traversable(g, c2) {
			continue
		}
		if r.segmentClear(g, a, c1) && r.segmentClear(g, c1, c2) && r.segmentClear(g, c2, b) {
			return Path{a, c1, c2, b}, true
		}
	}

	// Middle segment vertical: corners share a column.
	for col := lo; col <= g.Cols()-1-lo; col++ {
		if col == a.Col || col == b.Col {
			continue
		}
		c1, c2 := Pt(a.Row, col), Pt(b.Row, col)
		if c1 == c2 {
			continue
		}
		if !r.traversable(g, c1) || !r.traversable(g, c2) {
			continue
		}
		if r.segmentClear(g, a, c1) && r.segmentClear(g, c1, c2) && r.segmentClear(g, c2, b) {
			return Path{a, c1, c2, b}, true
		}
	}

	return nil, false
}

// traversable reports whether a path may pass through p: an empty slot on
// the board, or a slot on the border ring when the rules allow it.
func (r Rules) traversable(g *Grid, p Point) bool {
	if g.InBounds(p.Row, p.Col) {
		return g.TypeAt(p.Row, p.Col) == TypeEmpty
	}
	if !r.OuterBorder {
		return false
	}
	return p.Row >= -1 && p.Row <= g.Rows() && p.Col >= -1 && p.Col <= g.Cols()
}

// segmentClear checks that every slot strictly between a and b on a
// shared row or column is traversable. The endpoints themselves are not
// inspected.
func (r Rules) segmentClear(g *Grid, a, b Point) bool {
	switch {
	case a.Row == b.Row:
		lo, hi := minInt(a.Col, b.Col), maxInt(a.Col, b.Col)
		for col := lo + 1; col < hi; col++ {
			if !r.traversable(g, Pt(a.Row, col)) {
				return false
			}
		}
		return true
	case a.Col == b.Col:
		lo, hi := minInt(a.Row, b.Row), maxInt(a.Row, b.Row)
		for row := lo + 1; row < hi; row++ {
			if !r.traversable(g, Pt(row, a.Col)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
