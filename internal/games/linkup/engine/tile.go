// Package engine implements the tile connectivity and elimination core of
// the link-up puzzle: grid state, the turn-limited path check, the two-tap
// selection protocol, and the even-count board distribution. It is
// UI-agnostic and deterministic; the platform consumes its events.
package engine

// Type identifies the resource kind occupying a grid slot.
// TypeEmpty marks a vacant slot that paths may pass through.
type Type uint8

const (
	TypeEmpty Type = iota
	TypeGold
	TypeWood
	TypeStone
	TypeCrystal
	TypeFood
)

// String returns the string representation of a tile type.
func (t Type) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeGold:
		return "gold"
	case TypeWood:
		return "wood"
	case TypeStone:
		return "stone"
	case TypeCrystal:
		return "crystal"
	case TypeFood:
		return "food"
	default:
		return "unknown"
	}
}

// ResourceTypes returns the closed set of matchable types, in display order.
func ResourceTypes() []Type {
	return []Type{TypeGold, TypeWood, TypeStone, TypeCrystal, TypeFood}
}

// State is the selection state of an occupied slot.
// Elimination is not a lingering state: an eliminated slot reverts to
// TypeEmpty/StateIdle, so an empty tile can never be selected twice.
type State uint8

const (
	StateIdle State = iota
	StateSelected
)

// String returns the string representation of a tile state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Tile is one grid slot's content. Row and Col are fixed for the slot's
// lifetime; only Type and State change when the board is filled or a pair
// is eliminated.
type Tile struct {
	Row   int
	Col   int
	Type  Type
	State State
}

// IsEmpty reports whether the slot is vacant.
func (t Tile) IsEmpty() bool {
	return t.Type == TypeEmpty
}
