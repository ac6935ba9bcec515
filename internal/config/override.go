package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/ringboard/internal/board"
)

// ParseOverrides builds movement options from CLI override specs of the form
//
//	<ring>:<pass|land>=<action>[:<target ring>:<target tile>]
//
// e.g. "1:land=ascend:3:300" or "3:pass=throne". Later specs for the same
// ring and event replace earlier ones. Unknown action names are kept as-is;
// the simulator treats them as stay.
func ParseOverrides(specs []string) (board.MovementOptions, error) {
	opts := board.MovementOptions{}
	if len(specs) == 0 {
		return opts, nil
	}
	opts.PortalOverrides = make(map[board.RingNumber]board.PortalOverride)

	for _, spec := range specs {
		ring, event, action, err := parseOverride(spec)
		if err != nil {
			return board.MovementOptions{}, err
		}
		o := opts.PortalOverrides[ring]
		a := action
		if event == board.EventLand {
			o.OnLand = &a
		} else {
			o.OnPass = &a
		}
		opts.PortalOverrides[ring] = o
	}
	return opts, nil
}

func parseOverride(spec string) (board.RingNumber, board.Event, board.PortalAction, error) {
	fail := func(format string, args ...any) (board.RingNumber, board.Event, board.PortalAction, error) {
		return 0, 0, board.PortalAction{}, fmt.Errorf("config: override %q: %s", spec, fmt.Sprintf(format, args...))
	}

	lhs, rhs, ok := strings.Cut(spec, "=")
	if !ok {
		return fail("missing '='")
	}

	ringStr, eventStr, ok := strings.Cut(lhs, ":")
	if !ok {
		return fail("expected <ring>:<pass|land> before '='")
	}
	n, err := strconv.Atoi(ringStr)
	if err != nil || !board.RingNumber(n).Valid() {
		return fail("ring must be 1, 2 or 3")
	}

	var event board.Event
	switch strings.ToLower(eventStr) {
	case "pass":
		event = board.EventPass
	case "land":
		event = board.EventLand
	default:
		return fail("event must be pass or land")
	}

	parts := strings.Split(rhs, ":")
	action := board.PortalAction{Kind: board.ActionKind(strings.ToLower(parts[0]))}
	switch len(parts) {
	case 1:
	case 3:
		ring, err := strconv.Atoi(parts[1])
		if err != nil {
			return fail("bad target ring %q", parts[1])
		}
		tile, err := strconv.Atoi(parts[2])
		if err != nil {
			return fail("bad target tile %q", parts[2])
		}
		action.TargetRing = board.RingNumber(ring)
		action.TargetTile = tile
	default:
		return fail("expected <action> or <action>:<ring>:<tile> after '='")
	}

	return board.RingNumber(n), event, action, nil
}
