package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ringboard/internal/board"
	"github.com/vovakirdan/ringboard/internal/config"
)

func newSession(t *testing.T, seed int64, opts ...Option) *Session {
	t.Helper()
	s, err := New(config.DefaultLayout(), seed, opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestNewStartsOnStart(t *testing.T) {
	s := newSession(t, 1)

	if pos := s.Position(); pos.Ring != board.Ring1 || pos.TileID != 0 {
		t.Errorf("Position() = %+v, expected ring 1 tile 0", pos)
	}
	if s.Over() || s.Turns() != 0 {
		t.Error("fresh session should have no turns")
	}
	if s.ID() == "" {
		t.Error("session should have an id")
	}
	if _, ok := s.LastTurn(); ok {
		t.Error("fresh session has no last turn")
	}
}

func TestNewRejectsInvalidLayout(t *testing.T) {
	l := config.DefaultLayout()
	l.Rings = l.Rings[:1]

	if _, err := New(l, 1); !errors.Is(err, config.ErrInvalidLayout) {
		t.Errorf("New() error = %v, expected ErrInvalidLayout", err)
	}
}

func TestMoveClimbsToThrone(t *testing.T) {
	s := newSession(t, 1)

	// 17 lands on the Big Fish Portal -> ring 2 start.
	turn, err := s.Move(17)
	if err != nil {
		t.Fatalf("Move(17) error: %v", err)
	}
	if turn.Banner != "You ascended to Ring 2!" {
		t.Errorf("Banner = %q", turn.Banner)
	}
	if pos := s.Position(); pos != (Position{Ring: board.Ring2, TileID: 200}) {
		t.Fatalf("Position() = %+v, expected ring 2 tile 200", pos)
	}
	if turn.Tile.Name != "Boardroom" {
		t.Errorf("landed tile = %+v, expected Boardroom", turn.Tile)
	}

	// 12 lands on the Fall Portal -> ring 3 start.
	if _, err := s.Move(12); err != nil {
		t.Fatalf("Move(12) error: %v", err)
	}
	if pos := s.Position(); pos != (Position{Ring: board.Ring3, TileID: 300}) {
		t.Fatalf("Position() = %+v, expected ring 3 tile 300", pos)
	}

	// 6 lands on the throne.
	turn, err = s.Move(6)
	if err != nil {
		t.Fatalf("Move(6) error: %v", err)
	}
	if !s.Over() || turn.Banner != "You reached the throne!" {
		t.Errorf("Over()=%v Banner=%q", s.Over(), turn.Banner)
	}
	if turn.Tile.Kind != config.TileThrone {
		t.Errorf("landed tile kind = %q, expected throne", turn.Tile.Kind)
	}

	if _, err := s.Move(2); !errors.Is(err, ErrGameOver) {
		t.Errorf("Move after throne error = %v, expected ErrGameOver", err)
	}
	if _, err := s.Roll(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Roll after throne error = %v, expected ErrGameOver", err)
	}

	sum := s.Summary()
	if !sum.Throne || sum.Turns != 3 || sum.Steps != 35 || sum.FinalTile != 306 {
		t.Errorf("Summary() = %+v", sum)
	}
}

func TestMoveFallsOnPass(t *testing.T) {
	s := newSession(t, 1)
	if _, err := s.Move(17); err != nil {
		t.Fatal(err)
	}

	turn, err := s.Move(14)
	if err != nil {
		t.Fatalf("Move(14) error: %v", err)
	}
	if turn.Banner != "You fell to Ring 1!" {
		t.Errorf("Banner = %q", turn.Banner)
	}
	// 12 pips to the portal, jump to 0, 2 more pips.
	if pos := s.Position(); pos != (Position{Ring: board.Ring1, TileID: 2}) {
		t.Errorf("Position() = %+v, expected ring 1 tile 2", pos)
	}
	if turn.From != (Position{Ring: board.Ring2, TileID: 200}) {
		t.Errorf("From = %+v", turn.From)
	}
}

func TestMoveNegativeRoll(t *testing.T) {
	s := newSession(t, 1)
	if _, err := s.Move(-3); !errors.Is(err, board.ErrNegativeRoll) {
		t.Errorf("Move(-3) error = %v, expected ErrNegativeRoll", err)
	}
	if s.Turns() != 0 {
		t.Error("failed move should not count as a turn")
	}
}

func TestWithOverrides(t *testing.T) {
	opts := board.MovementOptions{PortalOverrides: map[board.RingNumber]board.PortalOverride{
		board.Ring1: {OnPass: &board.PortalAction{Kind: board.ActionThrone}},
	}}
	s := newSession(t, 1, WithOverrides(opts))

	turn, err := s.Move(20)
	if err != nil {
		t.Fatalf("Move(20) error: %v", err)
	}
	if !s.Over() || turn.Result.FinalTileID != 17 || turn.Result.StepsTaken != 17 {
		t.Errorf("expected throne stop at 17, got %+v", turn.Result)
	}
}

func TestRollDeterminism(t *testing.T) {
	a := newSession(t, 12345)
	b := newSession(t, 12345)

	for i := 0; i < 40; i++ {
		ta, errA := a.Roll()
		tb, errB := b.Roll()
		if errA != nil || errB != nil {
			if !errors.Is(errA, ErrGameOver) || !errors.Is(errB, ErrGameOver) {
				t.Fatalf("roll %d errors: %v, %v", i, errA, errB)
			}
			break
		}
		if ta.Roll.Total < 2 || ta.Roll.Total > 12 {
			t.Errorf("2d6 total %d out of range", ta.Roll.Total)
		}
		if ta.Result.FinalTileID != tb.Result.FinalTileID {
			t.Fatalf("roll %d diverged: %d vs %d", i, ta.Result.FinalTileID, tb.Result.FinalTileID)
		}
	}

	if a.Snapshot() != b.Snapshot() {
		t.Errorf("snapshots differ: %+v vs %+v", a.Snapshot(), b.Snapshot())
	}
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name   string
		result board.MovementResult
		want   string
	}{
		{"plain", board.MovementResult{FinalRing: board.Ring1}, ""},
		{"up", board.MovementResult{PortalDirection: board.DirectionUp, FinalRing: board.Ring3}, "You ascended to Ring 3!"},
		{"down", board.MovementResult{PortalDirection: board.DirectionDown, FinalRing: board.Ring2}, "You fell to Ring 2!"},
		{"throne", board.MovementResult{PortalDirection: board.DirectionThrone, FinalRing: board.Ring3}, "You reached the throne!"},
		{"unknown direction", board.MovementResult{PortalDirection: "sideways", FinalRing: board.Ring2}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Banner(tc.result); got != tc.want {
				t.Errorf("Banner() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestSessionTile(t *testing.T) {
	s, err := New(config.DefaultLayout(), 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		id    int
		ok    bool
		ring  board.RingNumber
		index int
	}{
		{0, true, board.Ring1, 0},
		{17, true, board.Ring1, 17},
		{212, true, board.Ring2, 12},
		{306, true, board.Ring3, 6},
		{35, false, 0, 0},
		{400, false, 0, 0},
	}

	for _, tc := range tests {
		tile, ok := s.Tile(tc.id)
		if ok != tc.ok {
			t.Errorf("Tile(%d) ok = %v, expected %v", tc.id, ok, tc.ok)
			continue
		}
		if ok && (tile.Ring != tc.ring || tile.Index != tc.index) {
			t.Errorf("Tile(%d) = ring %d index %d, expected ring %d index %d", tc.id, tile.Ring, tile.Index, tc.ring, tc.index)
		}
	}
}
