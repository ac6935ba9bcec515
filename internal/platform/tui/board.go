package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringboard/internal/board"
	"github.com/vovakirdan/ringboard/internal/core"
	"github.com/vovakirdan/ringboard/internal/game"
)

// helpHeight is the number of rows reserved below the canvas for key help.
const helpHeight = 2

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// SessionFactory starts a new game session with the given dice seed.
type SessionFactory func(seed int64) (*game.Session, error)

// BoardModel is the Bubble Tea model for one player's board.
// The simulator resolves a whole move at once; the model replays the
// returned path one hop per tick.
type BoardModel struct {
	newSession SessionFactory
	session    *game.Session
	recorder   game.RunRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	screen     *core.Screen
	keys       BoardKeyMap
	help       help.Model

	turn      *game.Turn
	pending   []board.Step
	replay    int // bumped on every roll; tags the hop chain it starts
	token     int
	trail     map[int]bool
	animating bool
	err       error
	saved     bool
	quitting  bool
}

// NewBoardModel starts a session and wraps it in a board model.
// recorder may be nil, in which case finished runs are not stored.
func NewBoardModel(factory SessionFactory, recorder game.RunRecorder, cfg core.RuntimeConfig, logger *log.Logger) (BoardModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.HopRate <= 0 {
		cfg.HopRate = core.DefaultConfig().HopRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session, err := factory(cfg.Seed)
	if err != nil {
		return BoardModel{}, err
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return BoardModel{
		newSession: factory,
		session:    session,
		recorder:   recorder,
		logger:     logger,
		config:     cfg,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		keys:       DefaultBoardKeyMap(),
		help:       h,
		token:      session.Position().TileID,
		trail:      make(map[int]bool),
	}, nil
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case HopMsg:
		return m.handleHop(msg)
	}

	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		if m.animating {
			m.finishReplay()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if !m.session.Over() || m.animating {
			return m, nil
		}
		return m.restart()

	case key.Matches(msg, m.keys.Roll):
		if m.animating || m.session.Over() {
			return m, nil
		}
		return m.roll()
	}
	return m, nil
}

func (m BoardModel) roll() (tea.Model, tea.Cmd) {
	turn, err := m.session.Roll()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.turn = &turn
	m.token = turn.From.TileID
	m.trail = make(map[int]bool)
	m.pending = append([]board.Step(nil), turn.Result.Path...)
	m.replay++

	if len(m.pending) == 0 {
		m.finishReplay()
		return m, nil
	}
	m.animating = true
	return m, hopCmd(m.replay, m.config.HopRate)
}

func (m BoardModel) handleHop(msg HopMsg) (tea.Model, tea.Cmd) {
	if !m.animating || msg.ID != m.replay {
		return m, nil
	}

	step := m.pending[0]
	m.pending = m.pending[1:]
	m.token = step.TileID
	m.trail[step.TileID] = true

	if len(m.pending) == 0 {
		m.finishReplay()
		return m, nil
	}
	return m, hopCmd(m.replay, m.config.HopRate)
}

// finishReplay ends the replay and moves the token to the committed
// position, which differs from the last path entry when a jump fired on
// the final pip.
func (m *BoardModel) finishReplay() {
	m.pending = nil
	m.animating = false
	m.token = m.session.Position().TileID
	if m.session.Over() {
		m.saveRun()
	}
}

func (m BoardModel) restart() (tea.Model, tea.Cmd) {
	m.saveRun()

	seed := m.session.Seed() + 1
	session, err := m.newSession(seed)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.config.Seed = seed
	m.session = session
	m.turn = nil
	m.token = session.Position().TileID
	m.trail = make(map[int]bool)
	m.err = nil
	m.saved = false
	return m, nil
}

// saveRun records the run once, if at least one turn was played.
func (m *BoardModel) saveRun() {
	if m.saved || m.recorder == nil || m.session.Turns() == 0 {
		return
	}
	m.saved = true

	summary := m.session.Summary()
	if err := m.recorder.RecordRun(summary); err != nil {
		m.logger.Warn("could not record run", "session", summary.SessionID, "error", err)
		return
	}
	m.logger.Info("run recorded",
		"session", summary.SessionID,
		"turns", summary.Turns,
		"throne", summary.Throne,
	)
}

// View renders the board, the turn status and the key help.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.screen
	s.Clear()

	layout := m.session.Layout()
	s.DrawTextCentered(0, layout.Title, core.ColorBrightWhite)
	y := drawBoard(s, layout, m.token, m.trail, 2)
	m.drawStatus(y + 1)

	return RenderScreen(s) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m BoardModel) drawStatus(y int) {
	s := m.screen
	layout := m.session.Layout()

	if m.turn == nil {
		s.DrawText(2, y, fmt.Sprintf("Roll %s to start on %s.", layout.DiceSpec(), m.session.Position().Ring), core.ColorWhite)
	} else {
		s.DrawText(2, y, fmt.Sprintf("Turn %d  rolled %s", m.turn.Number, rollText(*m.turn)), core.ColorWhite)
	}
	y++

	if tile, ok := layout.Tile(m.token); ok {
		s.DrawText(2, y, fmt.Sprintf("Tile %d  %s (%s)  %s", tile.ID, tile.Name, tile.Kind, tile.Ring), ringColors[tile.Ring])
	}
	y++

	if m.turn != nil && !m.animating {
		for _, t := range m.turn.Result.Transitions {
			s.DrawText(2, y, transitionText(t), core.ColorMagenta)
			y++
		}
		if m.turn.Banner != "" {
			s.DrawText(2, y, m.turn.Banner, core.ColorYellow)
			y++
		}
	}

	if m.session.Over() && !m.animating {
		s.DrawText(2, y, fmt.Sprintf("Finished in %d turns. Press r for a new game.", m.session.Turns()), core.ColorGreen)
		y++
	}
	if m.err != nil {
		s.DrawText(2, y, m.err.Error(), core.ColorRed)
	}
}

// Session returns the model's current game session.
func (m BoardModel) Session() *game.Session {
	return m.session
}

// Animating reports whether a path replay is in progress.
func (m BoardModel) Animating() bool {
	return m.animating
}

// Token returns the tile id the token is drawn on.
func (m BoardModel) Token() int {
	return m.token
}

// RunBoard runs the board in the current terminal.
func RunBoard(model BoardModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
