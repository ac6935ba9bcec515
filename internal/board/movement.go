package board

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeRoll is returned for a dice total below zero.
	ErrNegativeRoll = errors.New("board: negative dice roll")

	// ErrRollTooLarge is returned for a dice total above MaxRoll.
	ErrRollTooLarge = errors.New("board: dice roll too large")

	// ErrTileOutOfRange is returned when the start tile id does not belong
	// to the start ring.
	ErrTileOutOfRange = errors.New("board: start tile outside ring")
)

// MaxRoll is the largest dice total CalculateMovement accepts.
const MaxRoll = 1 << 20

// pathPrealloc bounds the initial path capacity. The slice still grows past
// it for long walks.
const pathPrealloc = 64

// Direction records the kind of ring transition that fired.
type Direction string

const (
	DirectionNone   Direction = ""
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionThrone Direction = "throne"
)

// Step is one entry of the movement path.
type Step struct {
	Ring   RingNumber
	TileID int
	// Arrival marks the extra entry appended after a ring jump.
	// It does not consume a dice pip.
	Arrival bool
}

// Transition describes a portal action that fired during a move.
type Transition struct {
	Ring   RingNumber // ring the portal belongs to
	TileID int        // absolute id of the portal tile
	Event  Event
	Action PortalAction
}

// Direction maps the transition's action to a Direction.
func (t Transition) Direction() Direction {
	return directionOf(t.Action.Kind)
}

// PortalOverride replaces a ring's default rule slots. A nil slot keeps the
// default; a set slot is used verbatim.
type PortalOverride struct {
	OnPass *PortalAction
	OnLand *PortalAction
}

// MovementOptions tunes a single CalculateMovement call.
type MovementOptions struct {
	PortalOverrides map[RingNumber]PortalOverride
}

// MovementResult is the outcome of one move. It is built fresh per call.
type MovementResult struct {
	Path        []Step
	FinalRing   RingNumber
	FinalTileID int

	PortalTriggered bool
	// PortalDirection is the most recent transition; see Transitions for all.
	PortalDirection       Direction
	LandedExactlyOnPortal bool

	// StepsTaken counts dice pips consumed. It differs from len(Path) when a
	// jump appended an Arrival entry or the throne cut the move short.
	StepsTaken  int
	Transitions []Transition
}

// HoppingTiles projects the path onto tile ids, in order.
func HoppingTiles(result MovementResult) []int {
	tiles := make([]int, len(result.Path))
	for i, s := range result.Path {
		tiles[i] = s.TileID
	}
	return tiles
}

// state is the walker's position in the ring state machine.
type state uint8

const (
	stateOnRing1 state = iota
	stateOnRing2
	stateOnRing3
	stateThrown
)

func stateFor(r RingNumber) state {
	switch r {
	case Ring1:
		return stateOnRing1
	case Ring2:
		return stateOnRing2
	case Ring3:
		return stateOnRing3
	default:
		panic(fmt.Sprintf("board: invalid ring number %d", r))
	}
}

func (s state) String() string {
	switch s {
	case stateOnRing1:
		return "OnRing1"
	case stateOnRing2:
		return "OnRing2"
	case stateOnRing3:
		return "OnRing3"
	case stateThrown:
		return "Thrown"
	default:
		return "Unknown"
	}
}

// transitionTable holds the effective portal action per on-ring state and
// event, defaults merged with overrides once per call.
type transitionTable [RingCount][2]PortalAction

func newTransitionTable(store *Store, opts MovementOptions) transitionTable {
	var t transitionTable
	for _, r := range store.rings {
		row := &t[stateFor(r.Number)]
		row[EventPass] = r.Portal.OnPass
		row[EventLand] = r.Portal.OnLand

		o, ok := opts.PortalOverrides[r.Number]
		if !ok {
			continue
		}
		if o.OnPass != nil {
			row[EventPass] = *o.OnPass
		}
		if o.OnLand != nil {
			row[EventLand] = *o.OnLand
		}
	}
	return t
}

// walker carries the mutable state of one CalculateMovement call.
type walker struct {
	store     *Store
	table     transitionTable
	state     state
	ring      RingNumber // kept after the throne so the final position is known
	index     int
	remaining int
	result    MovementResult
}

// CalculateMovement walks a token diceRoll steps from startTileID on
// startRing and reports the path, final position and portal events.
//
// Each step advances one tile clockwise with wrap-around. When the new tile
// is the ring's portal, the land rule applies if that step was the last one,
// otherwise the pass rule. Ascend and descend move the token to the action's
// target tile and, if steps remain, append an Arrival entry for it. Throne
// ends the move on the spot. Stay and unrecognized kinds do nothing.
//
// The ring configuration is re-read on every step so a jump picks up the new
// ring's size and portal immediately.
func CalculateMovement(store *Store, startRing RingNumber, startTileID, diceRoll int, opts MovementOptions) (MovementResult, error) {
	if !startRing.Valid() {
		return MovementResult{}, fmt.Errorf("%w: %d", ErrInvalidRing, startRing)
	}
	if diceRoll < 0 {
		return MovementResult{}, fmt.Errorf("%w: %d", ErrNegativeRoll, diceRoll)
	}
	if diceRoll > MaxRoll {
		return MovementResult{}, fmt.Errorf("%w: %d exceeds %d", ErrRollTooLarge, diceRoll, MaxRoll)
	}
	ring := store.Ring(startRing)
	if !ring.Contains(startTileID) {
		return MovementResult{}, fmt.Errorf("%w: tile %d not in %s [%d, %d]",
			ErrTileOutOfRange, startTileID, startRing, ring.TileIDOffset, ring.LastTileID())
	}

	w := walker{
		store:     store,
		table:     newTransitionTable(store, opts),
		state:     stateFor(startRing),
		ring:      startRing,
		index:     ring.LocalIndex(startTileID),
		remaining: diceRoll,
		result: MovementResult{
			Path: make([]Step, 0, min(diceRoll, pathPrealloc)),
		},
	}

	for w.remaining > 0 && w.state != stateThrown {
		w.step()
	}

	w.result.FinalRing = w.ring
	w.result.FinalTileID = w.store.AbsoluteID(w.ring, w.index)
	return w.result, nil
}

// step advances one tile and resolves the portal, if any.
func (w *walker) step() {
	ring := w.store.Ring(w.ring)

	w.index = (w.index + 1) % ring.TileCount
	w.remaining--
	w.result.StepsTaken++

	tileID := ring.AbsoluteID(w.index)
	w.result.Path = append(w.result.Path, Step{Ring: w.ring, TileID: tileID})

	if w.index != ring.Portal.Index {
		return
	}

	event := EventPass
	if w.remaining == 0 {
		event = EventLand
	}
	w.result.LandedExactlyOnPortal = event == EventLand

	action := w.table[w.state][event]
	w.apply(Transition{Ring: w.ring, TileID: tileID, Event: event, Action: action})
}

// apply executes a portal action.
func (w *walker) apply(t Transition) {
	switch t.Action.Kind {
	case ActionAscend, ActionDescend:
		if !t.Action.TargetRing.Valid() {
			// Malformed target: treated like an unknown kind.
			return
		}
		w.record(t)
		w.jump(t.Action.TargetRing, t.Action.TargetTile)
	case ActionThrone:
		w.record(t)
		w.remaining = 0
		w.state = stateThrown
	case ActionStay:
		// no-op
	default:
		// Unrecognized kinds fail soft so the walk always terminates.
	}
}

func (w *walker) record(t Transition) {
	w.result.PortalTriggered = true
	w.result.PortalDirection = t.Direction()
	w.result.Transitions = append(w.result.Transitions, t)
}

// jump moves the token to tileID on ring target.
func (w *walker) jump(target RingNumber, tileID int) {
	ring := w.store.Ring(target)
	w.ring = target
	w.state = stateFor(target)
	w.index = ring.wrap(ring.LocalIndex(tileID))

	if w.remaining > 0 {
		w.result.Path = append(w.result.Path, Step{
			Ring:    target,
			TileID:  ring.AbsoluteID(w.index),
			Arrival: true,
		})
	}
}

func directionOf(k ActionKind) Direction {
	switch k {
	case ActionAscend:
		return DirectionUp
	case ActionDescend:
		return DirectionDown
	case ActionThrone:
		return DirectionThrone
	default:
		// Stay and unrecognized kinds never fire a transition.
		return DirectionNone
	}
}
