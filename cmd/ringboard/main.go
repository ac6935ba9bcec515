// ringboard is a three-ring board game simulator for the terminal.
//
// Usage:
//
//	ringboard rings          - Show the ring table of the active layout
//	ringboard move           - Simulate a single move and print the path
//	ringboard play           - Play the board interactively
//	ringboard serve          - Start SSH server for remote play
//	ringboard runs           - Show the best finished runs
//	ringboard layouts        - List registered layouts
//
// Global flags:
//
//	--seed <value>    - Set dice seed for reproducible games
//	--db <path>       - Set database path (default: ~/.ringboard/runs.db)
//	--layout <id|path> - Use a registered layout id or a layout YAML file
//	--verbose         - Log every resolved move
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringboard/internal/config"
	"github.com/vovakirdan/ringboard/internal/game"
	"github.com/vovakirdan/ringboard/internal/registry"
	"github.com/vovakirdan/ringboard/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagLayout  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ringboard",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringboard",
	Short: "Ringboard - climb three rings of tiles to the throne",
	Long: `Ringboard simulates token movement on a board of three concentric
rings. Portals move the token between rings; landing exactly on the
innermost portal claims the throne.

Available commands:
  rings    - Show ring sizes, id ranges and portal rules
  move     - Simulate one move from a tile
  play     - Play interactively in the terminal
  serve    - Start SSH server for remote play
  runs     - View the best finished runs
  layouts  - List registered layouts

Examples:
  ringboard rings
  ringboard move --ring 1 --tile 14 --roll 3
  ringboard play --seed 42
  ringboard serve --ssh :2222
  ringboard runs`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		registerUserLayouts()
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Dice seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ringboard/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Layout id or path to a layout YAML file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every resolved move")

	rootCmd.AddCommand(ringsCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(layoutsCmd)
}

// registerUserLayouts adds every valid layout in ~/.ringboard/layouts to the
// registry. Broken files are logged and skipped.
func registerUserLayouts() {
	dir := config.UserLayoutDir()
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		return
	}

	layouts, skipped, err := config.LoadDir(dir)
	if err != nil {
		logger.Warn("could not read layout directory", "dir", dir, "error", err)
		return
	}
	for _, skipErr := range skipped {
		logger.Warn("skipping layout", "error", skipErr)
	}
	for _, l := range layouts {
		if err := registry.RegisterLayout(l); err != nil {
			logger.Debug("layout not registered", "id", l.ID, "error", err)
		}
	}
}

// resolveLayout returns the layout named by --layout: a registered id, a
// file path, or the default search order when the flag is empty.
func resolveLayout() config.Layout {
	if flagLayout != "" && registry.Exists(flagLayout) {
		l, err := registry.Create(flagLayout)
		if err != nil {
			fatal("Error loading layout", err)
		}
		return l
	}

	l, err := config.Load(flagLayout)
	if err != nil {
		fatal("Error loading layout", err)
	}
	return l
}

// openRecorder opens the run database. A failure is logged and play
// continues without history.
func openRecorder() (game.RunRecorder, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
