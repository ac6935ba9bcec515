// Package board models the concentric tile rings of the game board and the
// movement rules that walk a token around them.
// It is pure and deterministic: no I/O, no randomness, no shared mutable state.
package board

import "fmt"

// RingNumber identifies one of the concentric rings (1 = outer, 3 = inner).
type RingNumber int

const (
	Ring1 RingNumber = 1
	Ring2 RingNumber = 2
	Ring3 RingNumber = 3
)

// RingCount is the number of rings on every board.
const RingCount = 3

// Valid reports whether r names one of the three rings.
func (r RingNumber) Valid() bool {
	return r >= Ring1 && r <= Ring3
}

// String returns a human-readable ring name.
func (r RingNumber) String() string {
	return fmt.Sprintf("Ring %d", int(r))
}

// ActionKind tags the effect of a portal rule.
type ActionKind string

const (
	ActionAscend  ActionKind = "ascend"  // move to a higher ring
	ActionDescend ActionKind = "descend" // fall to a lower ring
	ActionStay    ActionKind = "stay"    // no-op
	ActionThrone  ActionKind = "throne"  // end movement, game won
)

// Known reports whether k is one of the four defined kinds.
func (k ActionKind) Known() bool {
	switch k {
	case ActionAscend, ActionDescend, ActionStay, ActionThrone:
		return true
	default:
		return false
	}
}

// PortalAction is a single rule slot of a portal.
// TargetRing and TargetTile are only read for ascend and descend.
type PortalAction struct {
	Kind       ActionKind
	TargetRing RingNumber
	TargetTile int // absolute tile id on TargetRing
}

// Stay returns the no-op action.
func Stay() PortalAction {
	return PortalAction{Kind: ActionStay}
}

// String formats the action for logs and CLI output.
func (a PortalAction) String() string {
	switch a.Kind {
	case ActionAscend, ActionDescend:
		return fmt.Sprintf("%s -> ring %d tile %d", a.Kind, a.TargetRing, a.TargetTile)
	case "":
		return "none"
	default:
		return string(a.Kind)
	}
}

// Event distinguishes moving through a portal tile from stopping on it.
type Event uint8

const (
	EventPass Event = iota // steps remain after reaching the portal
	EventLand              // the last step ends on the portal
)

// String returns "pass" or "land".
func (e Event) String() string {
	switch e {
	case EventPass:
		return "pass"
	case EventLand:
		return "land"
	default:
		return "unknown"
	}
}

// Portal is the single tile per ring where transition rules are evaluated.
type Portal struct {
	Index  int    // local index within the ring
	Name   string // e.g. "Big Fish Portal"
	OnPass PortalAction
	OnLand PortalAction
}

// Action returns the rule slot for the given event.
func (p Portal) Action(e Event) PortalAction {
	if e == EventLand {
		return p.OnLand
	}
	return p.OnPass
}

// Ring is the immutable description of one ring.
type Ring struct {
	Number           RingNumber
	Name             string
	TileCount        int
	TileIDOffset     int
	RewardMultiplier float64
	RiskMultiplier   float64
	Portal           Portal
}

// AbsoluteID converts a local index to an absolute tile id.
func (r Ring) AbsoluteID(local int) int {
	return r.TileIDOffset + local
}

// LocalIndex converts an absolute tile id to a local index.
// The result is only meaningful when Contains(abs) is true.
func (r Ring) LocalIndex(abs int) int {
	return abs - r.TileIDOffset
}

// Contains reports whether abs falls inside this ring's id range.
func (r Ring) Contains(abs int) bool {
	local := r.LocalIndex(abs)
	return local >= 0 && local < r.TileCount
}

// LastTileID returns the highest absolute id on the ring.
func (r Ring) LastTileID() int {
	return r.TileIDOffset + r.TileCount - 1
}

// wrap normalizes a local index into [0, TileCount).
func (r Ring) wrap(local int) int {
	return ((local % r.TileCount) + r.TileCount) % r.TileCount
}
