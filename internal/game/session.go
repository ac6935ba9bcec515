// Package game runs a single player's board session: it rolls the dice,
// feeds the total to the movement simulator and commits the final position.
// State lives in memory only; finished runs are handed to a RunRecorder.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ringboard/internal/board"
	"github.com/vovakirdan/ringboard/internal/config"
	"github.com/vovakirdan/ringboard/internal/dice"
)

// ErrGameOver is returned when moving after the throne was reached.
var ErrGameOver = errors.New("game: session is over")

// Position is a token location on the board.
type Position struct {
	Ring   board.RingNumber
	TileID int
}

// Turn is the record of one move.
type Turn struct {
	Number int
	Roll   dice.Result // empty Faces when the total was supplied directly
	From   Position
	Result board.MovementResult
	Tile   config.Tile // tile the token stopped on
	Banner string
}

// Session is one player's game. It is not safe for concurrent use; each
// player or SSH connection owns its own session.
type Session struct {
	id     string
	layout config.Layout
	store  *board.Store
	src    dice.Source
	seed   int64
	opts   board.MovementOptions
	logger *log.Logger

	pos   Position
	turns int
	steps int
	last  *Turn
	won   bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for per-move debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithOverrides applies portal overrides to every move.
func WithOverrides(opts board.MovementOptions) Option {
	return func(s *Session) {
		s.opts = opts
	}
}

// WithSource replaces the seeded dice source.
func WithSource(src dice.Source) Option {
	return func(s *Session) {
		s.src = src
	}
}

// New starts a session on the layout's Start tile (ring 1, local index 0).
func New(layout config.Layout, seed int64, opts ...Option) (*Session, error) {
	store, err := layout.Store()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	s := &Session{
		id:     uuid.NewString(),
		layout: layout,
		store:  store,
		src:    dice.NewSeeded(seed),
		seed:   seed,
		logger: log.New(io.Discard),
		pos: Position{
			Ring:   board.Ring1,
			TileID: store.Offset(board.Ring1),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Roll rolls the layout's dice and moves by the total.
func (s *Session) Roll() (Turn, error) {
	if s.won {
		return Turn{}, ErrGameOver
	}
	roll, err := dice.Roll(s.src, s.layout.DiceSpec())
	if err != nil {
		return Turn{}, fmt.Errorf("game: %w", err)
	}
	return s.move(roll)
}

// Move advances by an externally resolved dice total.
func (s *Session) Move(total int) (Turn, error) {
	return s.move(dice.Result{Total: total})
}

func (s *Session) move(roll dice.Result) (Turn, error) {
	if s.won {
		return Turn{}, ErrGameOver
	}

	result, err := board.CalculateMovement(s.store, s.pos.Ring, s.pos.TileID, roll.Total, s.opts)
	if err != nil {
		return Turn{}, fmt.Errorf("game: %w", err)
	}

	s.turns++
	s.steps += result.StepsTaken
	turn := Turn{
		Number: s.turns,
		Roll:   roll,
		From:   s.pos,
		Result: result,
		Banner: Banner(result),
	}
	turn.Tile, _ = s.Tile(result.FinalTileID)

	s.pos = Position{Ring: result.FinalRing, TileID: result.FinalTileID}
	if result.PortalDirection == board.DirectionThrone {
		s.won = true
	}
	s.last = &turn

	s.logger.Debug("move resolved",
		"session", s.id,
		"turn", turn.Number,
		"roll", roll.Total,
		"from", turn.From.TileID,
		"to", result.FinalTileID,
		"ring", result.FinalRing,
		"portal", result.PortalDirection,
	)
	return turn, nil
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Seed returns the dice seed.
func (s *Session) Seed() int64 { return s.seed }

// Layout returns the session's board layout.
func (s *Session) Layout() config.Layout { return s.layout }

// Store returns the ring store the session moves on.
func (s *Session) Store() *board.Store { return s.store }

// Tile returns metadata for an absolute tile id on the session's layout.
func (s *Session) Tile(id int) (config.Tile, bool) { return s.layout.Tile(id) }

// Position returns the token's current location.
func (s *Session) Position() Position { return s.pos }

// Turns returns the number of completed turns.
func (s *Session) Turns() int { return s.turns }

// Over reports whether the throne was reached.
func (s *Session) Over() bool { return s.won }

// LastTurn returns the most recent turn, if any.
func (s *Session) LastTurn() (Turn, bool) {
	if s.last == nil {
		return Turn{}, false
	}
	return *s.last, true
}
