package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/ringboard/internal/board"
)

// ErrInvalidLayout wraps every layout validation failure.
var ErrInvalidLayout = errors.New("config: invalid layout")

// Validate checks structural consistency of the layout.
// All problems are reported at once.
func (l Layout) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if l.ID == "" {
		add("id is required")
	}
	if l.Dice.Count <= 0 || l.Dice.Sides <= 0 {
		add("dice must have count > 0 and sides > 0, got %dd%d", l.Dice.Count, l.Dice.Sides)
	} else if l.Dice.Count > board.MaxRoll/l.Dice.Sides {
		add("dice %dd%d can roll above %d", l.Dice.Count, l.Dice.Sides, board.MaxRoll)
	}
	if len(l.Rings) != board.RingCount {
		add("expected %d rings, got %d", board.RingCount, len(l.Rings))
	}

	seen := make(map[int]bool)
	for _, r := range l.Rings {
		if !board.RingNumber(r.Number).Valid() {
			add("ring number %d must be 1, 2 or 3", r.Number)
			continue
		}
		if seen[r.Number] {
			add("ring %d defined twice", r.Number)
			continue
		}
		seen[r.Number] = true

		if len(r.Tiles) == 0 {
			add("ring %d has no tiles", r.Number)
			continue
		}
		if r.Portal.Index < 0 || r.Portal.Index >= len(r.Tiles) {
			add("ring %d portal index %d outside [0, %d)", r.Number, r.Portal.Index, len(r.Tiles))
		}
		for i, t := range r.Tiles {
			if t.Name == "" {
				add("ring %d tile %d has no name", r.Number, i)
			}
		}
	}

	// Action targets need every ring resolved first.
	for _, r := range l.Rings {
		if !seen[r.Number] {
			continue
		}
		for _, slot := range []struct {
			event  board.Event
			action ActionConfig
		}{
			{board.EventPass, r.Portal.OnPass},
			{board.EventLand, r.Portal.OnLand},
		} {
			if err := l.validateAction(slot.action); err != nil {
				add("ring %d on_%s: %w", r.Number, slot.event, err)
			}
		}
	}

	if err := l.validateRanges(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidLayout, l.ID, errors.Join(errs...))
}

// validateAction checks a single rule slot.
func (l Layout) validateAction(a ActionConfig) error {
	kind := board.ActionKind(a.Action)
	if !kind.Known() {
		return fmt.Errorf("unknown action %q", a.Action)
	}
	if kind != board.ActionAscend && kind != board.ActionDescend {
		return nil
	}

	target, ok := l.Ring(board.RingNumber(a.TargetRing))
	if !ok {
		return fmt.Errorf("%s targets missing ring %d", kind, a.TargetRing)
	}
	idx := a.TargetTile - target.Offset
	if idx < 0 || idx >= len(target.Tiles) {
		return fmt.Errorf("%s target tile %d not on ring %d [%d, %d]",
			kind, a.TargetTile, target.Number, target.Offset, target.Offset+len(target.Tiles)-1)
	}
	return nil
}

// validateRanges rejects rings whose absolute id ranges overlap.
func (l Layout) validateRanges() error {
	rings := make([]RingConfig, 0, len(l.Rings))
	for _, r := range l.Rings {
		if len(r.Tiles) > 0 {
			rings = append(rings, r)
		}
	}
	sort.Slice(rings, func(i, j int) bool {
		return rings[i].Offset < rings[j].Offset
	})

	for i := 1; i < len(rings); i++ {
		prev, cur := rings[i-1], rings[i]
		prevLast := prev.Offset + len(prev.Tiles) - 1
		if cur.Offset <= prevLast {
			return fmt.Errorf("ring %d ids start at %d inside ring %d [%d, %d]",
				cur.Number, cur.Offset, prev.Number, prev.Offset, prevLast)
		}
	}
	return nil
}
