package engine

import "errors"

var (
	// ErrOutOfBounds is returned for coordinates outside the grid. The
	// input layer only forwards real coordinates, so hitting this is a
	// programming error at the call site.
	ErrOutOfBounds = errors.New("engine: coordinate out of bounds")

	// ErrInvalidDistribution is returned when a distribution does not
	// cover the grid slot for slot.
	ErrInvalidDistribution = errors.New("engine: distribution length does not match slot count")
)

// Grid owns a fixed-size rectangular board of tiles, stored row-major.
// Slot identity is stable: filling or clearing rewrites a tile's content
// in place, never replaces the tile. All tile mutation goes through the
// grid; it knows nothing about selection or scoring.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewGrid creates an all-empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.tiles[r*cols+c] = Tile{Row: r, Col: c, Type: TypeEmpty, State: StateIdle}
		}
	}
	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Slots returns the total slot count.
func (g *Grid) Slots() int { return g.rows * g.cols }

// InBounds reports whether (row, col) lies on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the tile occupying (row, col), or ErrOutOfBounds.
func (g *Grid) At(row, col int) (*Tile, error) {
	if !g.InBounds(row, col) {
		return nil, ErrOutOfBounds
	}
	return &g.tiles[row*g.cols+col], nil
}

// TypeAt returns the type of the slot at (row, col).
// Out-of-bounds coordinates read as TypeEmpty; the path finder relies on
// this for the implicit border ring around the board.
func (g *Grid) TypeAt(row, col int) Type {
	if !g.InBounds(row, col) {
		return TypeEmpty
	}
	return g.tiles[row*g.cols+col].Type
}

// Fill overwrites every slot's content from the distribution, resetting
// all selection state. Fails with ErrInvalidDistribution when the
// distribution does not cover exactly the slot count.
func (g *Grid) Fill(dist Distribution) error {
	if len(dist) != len(g.tiles) {
		return ErrInvalidDistribution
	}
	for i := range g.tiles {
		g.tiles[i].Type = dist[i]
		g.tiles[i].State = StateIdle
	}
	return nil
}

// ClearSlot vacates the slot at (row, col). Used by elimination;
// out-of-bounds coordinates are ignored.
func (g *Grid) ClearSlot(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	g.tiles[row*g.cols+col].Type = TypeEmpty
	g.tiles[row*g.cols+col].State = StateIdle
}

// IsFullyEmpty reports whether every slot is vacant.
func (g *Grid) IsFullyEmpty() bool {
	return g.OccupiedCount() == 0
}

// OccupiedCount returns the number of non-empty slots.
func (g *Grid) OccupiedCount() int {
	count := 0
	for i := range g.tiles {
		if g.tiles[i].Type != TypeEmpty {
			count++
		}
	}
	return count
}

// CountByType returns the occupied-slot count per non-empty type.
func (g *Grid) CountByType() map[Type]int {
	counts := make(map[Type]int)
	for i := range g.tiles {
		if t := g.tiles[i].Type; t != TypeEmpty {
			counts[t]++
		}
	}
	return counts
}
