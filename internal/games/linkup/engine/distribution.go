package engine

import (
	"errors"
	"math/rand"
)

// ErrInvalidConfiguration is returned when no all-even partition of the
// usable slots exists for the requested type set. This is a construction
// time failure, never expected during play with a sane configuration.
var ErrInvalidConfiguration = errors.New("engine: cannot build an even distribution for this board")

// Distribution assigns a type (or TypeEmpty) to every slot index of a grid,
// in row-major order.
type Distribution []Type

// GenerateDistribution produces a full-board assignment in which every
// present type occupies an even number of slots, so the board is always
// fully pairable. At least one slot is reserved empty; a second slot is
// reserved when the total is even, keeping the usable count even. Per-type
// counts differ by at most 2. The flat assignment is shuffled with a
// Fisher-Yates pass over the injected rng.
func GenerateDistribution(slots int, types []Type, rng *rand.Rand) (Distribution, error) {
	if len(types) == 0 {
		return nil, ErrInvalidConfiguration
	}

	reserved := 1
	if (slots-reserved)%2 != 0 {
		reserved = 2
	}
	usable := slots - reserved
	if usable < 2 {
		return nil, ErrInvalidConfiguration
	}

	counts := evenPartition(usable, len(types))

	dist := make(Distribution, 0, slots)
	for i, t := range types {
		for n := 0; n < counts[i]; n++ {
			dist = append(dist, t)
		}
	}
	for len(dist) < slots {
		dist = append(dist, TypeEmpty)
	}

	// Fisher-Yates shuffle
	for i := len(dist) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dist[i], dist[j] = dist[j], dist[i]
	}

	return dist, nil
}

// evenPartition splits usable (even, >= 2) into k non-negative even counts
// differing by at most 2. The leftover after the even base is itself even
// and is handed out two at a time.
func evenPartition(usable, k int) []int {
	base := (usable / k) &^ 1
	counts := make([]int, k)
	for i := range counts {
		counts[i] = base
	}
	// leftover < 2k, so handing out pairs never wraps around.
	leftover := usable - base*k
	for i := 0; leftover > 0; i++ {
		counts[i] += 2
		leftover -= 2
	}
	return counts
}
