package game

import "github.com/vovakirdan/ringboard/internal/board"

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Turns  int
	Steps  int
	Ring   board.RingNumber
	TileID int
	Over   bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Turns:  s.turns,
		Steps:  s.steps,
		Ring:   s.pos.Ring,
		TileID: s.pos.TileID,
		Over:   s.won,
	}
}

// RunSummary is the outcome of a run, recorded when a session ends.
type RunSummary struct {
	SessionID string
	LayoutID  string
	Seed      int64
	Turns     int
	Steps     int
	FinalRing board.RingNumber
	FinalTile int
	Throne    bool
}

// RunRecorder persists finished runs. Implemented by storage.Store.
type RunRecorder interface {
	RecordRun(RunSummary) error
}

// Summary returns the run summary for the session so far.
func (s *Session) Summary() RunSummary {
	return RunSummary{
		SessionID: s.id,
		LayoutID:  s.layout.ID,
		Seed:      s.seed,
		Turns:     s.turns,
		Steps:     s.steps,
		FinalRing: s.pos.Ring,
		FinalTile: s.pos.TileID,
		Throne:    s.won,
	}
}
