package engine

// Outcome classifies what a tap did. Rejected pairings are normal
// negative outcomes, not errors.
type Outcome uint8

const (
	// OutcomeIgnored means the tap hit an empty slot.
	OutcomeIgnored Outcome = iota
	// OutcomeSelected means the tapped tile became the pending selection.
	OutcomeSelected
	// OutcomeDeselected means the tap toggled the pending selection off.
	OutcomeDeselected
	// OutcomeEliminated means a valid pair was removed from the board.
	OutcomeEliminated
	// OutcomeRejected means the pair mismatched or had no valid path;
	// all selections were cleared.
	OutcomeRejected
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeEliminated:
		return "eliminated"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// TapResult reports the effect of one tap. Path is set only for
// eliminations and exists purely so the UI can draw the connecting line.
type TapResult struct {
	Outcome Outcome
	Path    Path
	A       Tile // first tile involved, if any
	B       Tile // second tile of a pairing attempt, zero otherwise
}

// Selector is the selection state machine: it accumulates at most one
// pending tile, asks the connectivity rules for a verdict on the second
// tap, and mutates the grid only through ClearSlot on success.
type Selector struct {
	grid    *Grid
	rules   Rules
	sink    Sink
	pending []Point
}

// NewSelector creates a selection controller over the given grid.
// A nil sink discards events.
func NewSelector(g *Grid, rules Rules, sink Sink) *Selector {
	if sink == nil {
		sink = NopSink{}
	}
	return &Selector{grid: g, rules: rules, sink: sink}
}

// Pending returns the currently selected point, if any.
func (s *Selector) Pending() (Point, bool) {
	if len(s.pending) == 0 {
		return Point{}, false
	}
	return s.pending[0], true
}

// Tap processes one tile-tapped input to completion. Coordinates outside
// the grid return ErrOutOfBounds; everything else is an Outcome.
func (s *Selector) Tap(row, col int) (TapResult, error) {
	tile, err := s.grid.At(row, col)
	if err != nil {
		return TapResult{}, err
	}

	// More than one outstanding selection should be impossible; if it
	// ever happens, drop everything before handling the new tap.
	if len(s.pending) > 1 {
		s.deselectAll()
	}

	if tile.IsEmpty() {
		return TapResult{Outcome: OutcomeIgnored}, nil
	}

	if len(s.pending) == 0 {
		tile.State = StateSelected
		s.pending = append(s.pending, Pt(row, col))
		s.sink.TileSelected(*tile)
		return TapResult{Outcome: OutcomeSelected, A: *tile}, nil
	}

	first := s.pending[0]
	if first == Pt(row, col) {
		tile.State = StateIdle
		s.pending = s.pending[:0]
		s.sink.TileDeselected(*tile)
		return TapResult{Outcome: OutcomeDeselected, A: *tile}, nil
	}

	a, err := s.grid.At(first.Row, first.Col)
	if err != nil {
		// Pending point was on the grid when selected; it cannot leave.
		return TapResult{}, err
	}

	tile.State = StateSelected
	s.sink.TileSelected(*tile)

	if path, ok := s.rules.FindPath(s.grid, first, Pt(row, col)); ok {
		ea, eb := *a, *tile
		ea.State, eb.State = StateIdle, StateIdle
		s.grid.ClearSlot(first.Row, first.Col)
		s.grid.ClearSlot(row, col)
		s.pending = s.pending[:0]
		s.sink.TilesEliminated(ea, eb)
		return TapResult{Outcome: OutcomeEliminated, Path: path, A: ea, B: eb}, nil
	}

	// Mismatch or no path: clear both selections. The result snapshots
	// the tiles after the reset so it mirrors the board state.
	a.State = StateIdle
	tile.State = StateIdle
	s.pending = s.pending[:0]
	s.sink.TileDeselected(*a)
	s.sink.TileDeselected(*tile)
	return TapResult{Outcome: OutcomeRejected, A: *a, B: *tile}, nil
}

// deselectAll clears every outstanding selection, emitting a deselect
// event per affected tile.
func (s *Selector) deselectAll() {
	for _, p := range s.pending {
		if t, err := s.grid.At(p.Row, p.Col); err == nil && t.State == StateSelected {
			t.State = StateIdle
			s.sink.TileDeselected(*t)
		}
	}
	s.pending = s.pending[:0]
}
