package board

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidRing is returned when a caller names a ring outside 1..3.
var ErrInvalidRing = errors.New("board: invalid ring number")

// Store is the read-only ring configuration consulted by the simulator.
// Build it once with NewStore; it is safe for concurrent reads.
type Store struct {
	rings [RingCount]Ring
}

// NewStore builds a store from exactly one definition per ring.
// Order of the arguments does not matter.
func NewStore(rings ...Ring) (*Store, error) {
	if len(rings) != RingCount {
		return nil, fmt.Errorf("board: expected %d rings, got %d", RingCount, len(rings))
	}

	var s Store
	seen := make(map[RingNumber]bool, RingCount)
	for _, r := range rings {
		if !r.Number.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRing, r.Number)
		}
		if seen[r.Number] {
			return nil, fmt.Errorf("board: ring %d defined twice", r.Number)
		}
		seen[r.Number] = true

		if r.TileCount <= 0 {
			return nil, fmt.Errorf("board: ring %d has no tiles", r.Number)
		}
		if r.Portal.Index < 0 || r.Portal.Index >= r.TileCount {
			return nil, fmt.Errorf("board: ring %d portal index %d outside [0, %d)",
				r.Number, r.Portal.Index, r.TileCount)
		}
		s.rings[r.Number-1] = r
	}

	if err := s.checkOverlap(); err != nil {
		return nil, err
	}
	return &s, nil
}

// MustStore is like NewStore but panics on error. Intended for static layouts
// and tests.
func MustStore(rings ...Ring) *Store {
	s, err := NewStore(rings...)
	if err != nil {
		panic(err)
	}
	return s
}

// checkOverlap rejects rings whose absolute id ranges collide.
func (s *Store) checkOverlap() error {
	sorted := s.Rings()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TileIDOffset < sorted[j].TileIDOffset
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.TileIDOffset <= prev.LastTileID() {
			return fmt.Errorf("board: ring %d ids [%d, %d] overlap ring %d ids [%d, %d]",
				cur.Number, cur.TileIDOffset, cur.LastTileID(),
				prev.Number, prev.TileIDOffset, prev.LastTileID())
		}
	}
	return nil
}

// Ring returns the configuration of ring n.
// Panics if n is not 1, 2 or 3.
func (s *Store) Ring(n RingNumber) Ring {
	if !n.Valid() {
		panic(fmt.Sprintf("board: invalid ring number %d", n))
	}
	return s.rings[n-1]
}

// Rings returns a copy of all ring definitions ordered by number.
func (s *Store) Rings() []Ring {
	out := make([]Ring, RingCount)
	copy(out, s.rings[:])
	return out
}

// TileCount returns the number of tiles on ring n.
func (s *Store) TileCount(n RingNumber) int {
	return s.Ring(n).TileCount
}

// Offset returns the absolute id base of ring n.
func (s *Store) Offset(n RingNumber) int {
	return s.Ring(n).TileIDOffset
}

// PortalIndex returns the local index of ring n's portal tile.
func (s *Store) PortalIndex(n RingNumber) int {
	return s.Ring(n).Portal.Index
}

// DefaultAction returns ring n's configured action for the event.
func (s *Store) DefaultAction(n RingNumber, e Event) PortalAction {
	return s.Ring(n).Portal.Action(e)
}

// AbsoluteID converts a local index on ring n to an absolute id.
func (s *Store) AbsoluteID(n RingNumber, local int) int {
	return s.Ring(n).AbsoluteID(local)
}

// LocalIndex converts an absolute id on ring n to a local index.
func (s *Store) LocalIndex(n RingNumber, abs int) int {
	return s.Ring(n).LocalIndex(abs)
}

// RingOf finds the ring whose id range contains abs.
func (s *Store) RingOf(abs int) (RingNumber, bool) {
	for _, r := range s.rings {
		if r.Contains(abs) {
			return r.Number, true
		}
	}
	return 0, false
}

// IsPortal reports whether abs is the portal tile of its ring.
func (s *Store) IsPortal(abs int) bool {
	n, ok := s.RingOf(abs)
	if !ok {
		return false
	}
	r := s.Ring(n)
	return r.LocalIndex(abs) == r.Portal.Index
}
