package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ringboard/internal/config"
	"github.com/vovakirdan/ringboard/internal/core"
	"github.com/vovakirdan/ringboard/internal/game"
	"github.com/vovakirdan/ringboard/internal/platform/tui"
)

const debugLogPath = "ringboard-debug.log"

var (
	flagHopRate       int
	flagPlayOverrides []string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the board",
	Long: `Start an interactive board. Each roll is resolved at once and the
token then replays the path one tile at a time.

Controls:
  Space/Enter - Roll the dice
  S/Tab       - Skip the replay
  R           - New game (after the throne)
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Finished runs, and runs left after at least one turn, are saved to the
run database. With --verbose every move is logged to ` + debugLogPath + `.

Examples:
  ringboard play
  ringboard play --seed 42
  ringboard play --layout ./my-board.yaml
  ringboard play --override 1:pass=ascend:2:200`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHopRate, "hop-rate", core.DefaultConfig().HopRate, "Replay speed in tiles per second")
	playCmd.Flags().StringArrayVar(&flagPlayOverrides, "override", nil, "Portal rule override (repeatable)")
}

func runPlay(_ *cobra.Command, _ []string) {
	layout := resolveLayout()
	opts, err := config.ParseOverrides(flagPlayOverrides)
	if err != nil {
		fatal("Error parsing overrides", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		HopRate: flagHopRate,
		Seed:    flagSeed,
	}

	// The board owns the terminal, so move logs go to a file.
	sessionLogger := log.New(io.Discard)
	if flagVerbose {
		f, fileErr := os.OpenFile(debugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if fileErr != nil {
			fatal("Error opening debug log", fileErr)
		}
		defer f.Close()
		sessionLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "ringboard",
			Level:           log.DebugLevel,
		})
	}

	factory := func(seed int64) (*game.Session, error) {
		return game.New(layout, seed,
			game.WithLogger(sessionLogger),
			game.WithOverrides(opts),
		)
	}

	recorder, closeStore := openRecorder()
	defer closeStore()

	model, err := tui.NewBoardModel(factory, recorder, cfg, sessionLogger)
	if err != nil {
		fatal("Error starting game", err)
	}

	if err := tui.RunBoard(model); err != nil {
		closeStore()
		fatal("Error running game", err)
	}
}
