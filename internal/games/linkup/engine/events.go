package engine

// Sink receives the engine's gameplay events. Every event is delivered
// synchronously, at most once per tap, from the goroutine that called
// Tap. Rendering, drop physics and scoring all hang off this interface;
// the engine itself has no opinion about what happens downstream.
type Sink interface {
	// TileSelected fires when a tap marks a tile as selected.
	TileSelected(t Tile)
	// TileDeselected fires when a selection is toggled off or a pairing
	// attempt is rejected.
	TileDeselected(t Tile)
	// TilesEliminated fires on a successful pairing. Both tiles carry
	// their final grid coordinates and the shared type; the slots are
	// already vacant when the event is delivered.
	TilesEliminated(a, b Tile)
	// BoardRefilled fires after a fully cleared board has been
	// repopulated with a fresh distribution.
	BoardRefilled()
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) TileSelected(Tile)         {}
func (NopSink) TileDeselected(Tile)       {}
func (NopSink) TilesEliminated(a, b Tile) {}
func (NopSink) BoardRefilled()            {}

// EventKind discriminates recorded events.
type EventKind uint8

const (
	EventTileSelected EventKind = iota
	EventTileDeselected
	EventTilesEliminated
	EventBoardRefilled
)

// Event is one recorded engine event.
type Event struct {
	Kind EventKind
	A    Tile
	B    Tile // second tile of an elimination, zero otherwise
}

// Recorder is a Sink that appends every event to a slice. Used by tests
// to assert exact event sequences.
type Recorder struct {
	Events []Event
}

func (r *Recorder) TileSelected(t Tile) {
	r.Events = append(r.Events, Event{Kind: EventTileSelected, A: t})
}

func (r *Recorder) TileDeselected(t Tile) {
	r.Events = append(r.Events, Event{Kind: EventTileDeselected, A: t})
}

func (r *Recorder) TilesEliminated(a, b Tile) {
	r.Events = append(r.Events, Event{Kind: EventTilesEliminated, A: a, B: b})
}

func (r *Recorder) BoardRefilled() {
	r.Events = append(r.Events, Event{Kind: EventBoardRefilled})
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
