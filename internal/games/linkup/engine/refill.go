package engine

import "math/rand"

// Refiller regenerates the board once it has been fully cleared. It is
// the only automatic refill trigger; a partially empty board is left
// alone, which is safe because every type's count is even and therefore
// fully pairable.
type Refiller struct {
	grid  *Grid
	types []Type
	rng   *rand.Rand
	sink  Sink
}

// NewRefiller creates a refill scheduler over the given grid.
func NewRefiller(g *Grid, types []Type, rng *rand.Rand, sink Sink) *Refiller {
	if sink == nil {
		sink = NopSink{}
	}
	return &Refiller{grid: g, types: types, rng: rng, sink: sink}
}

// AfterElimination runs the refill check. Call it after every
// elimination; it reports whether the board was refilled.
func (r *Refiller) AfterElimination() (bool, error) {
	if !r.grid.IsFullyEmpty() {
		return false, nil
	}
	dist, err := GenerateDistribution(r.grid.Slots(), r.types, r.rng)
	if err != nil {
		return false, err
	}
	if err := r.grid.Fill(dist); err != nil {
		return false, err
	}
	r.sink.BoardRefilled()
	return true, nil
}
