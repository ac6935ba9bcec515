package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringboard/internal/board"
	"github.com/vovakirdan/ringboard/internal/config"
	"github.com/vovakirdan/ringboard/internal/dice"
	"github.com/vovakirdan/ringboard/internal/game"
)

var (
	flagMoveRing  int
	flagMoveTile  int
	flagMoveRoll  int
	flagOverrides []string
	flagJSON      bool
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Simulate a single move",
	Long: `Resolve one move from a tile and print the hop path, the final
position and every portal rule that fired.

Without --roll the layout's dice are rolled (use --seed to repeat a roll).
--tile is the absolute tile id; it defaults to the ring's first tile.

Overrides replace a portal rule for this move only:
  <ring>:<pass|land>=<action>[:<target ring>:<target tile>]

Path entries in brackets are arrival tiles after a ring change; they do
not consume a step.

Examples:
  ringboard move --ring 1 --tile 14 --roll 3
  ringboard move --ring 2 --tile 210 --roll 4
  ringboard move --ring 3 --tile 300 --roll 10 --override 3:pass=throne
  ringboard move --ring 1 --tile 14 --roll 3 --json`,
	Args: cobra.NoArgs,
	Run:  runMove,
}

func init() {
	moveCmd.Flags().IntVar(&flagMoveRing, "ring", 1, "Starting ring (1-3)")
	moveCmd.Flags().IntVar(&flagMoveTile, "tile", -1, "Starting absolute tile id (default: ring's first tile)")
	moveCmd.Flags().IntVar(&flagMoveRoll, "roll", 0, "Dice total (default: roll the layout's dice)")
	moveCmd.Flags().StringArrayVar(&flagOverrides, "override", nil, "Portal rule override (repeatable)")
	moveCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
}

// moveOutput is the JSON form of a resolved move.
type moveOutput struct {
	StartRing       int              `json:"start_ring"`
	StartTile       int              `json:"start_tile"`
	Roll            int              `json:"roll"`
	Faces           []int            `json:"faces,omitempty"`
	Path            []pathEntry      `json:"path"`
	FinalRing       int              `json:"final_ring"`
	FinalTile       int              `json:"final_tile"`
	FinalTileName   string           `json:"final_tile_name,omitempty"`
	PortalTriggered bool             `json:"portal_triggered"`
	PortalDirection string           `json:"portal_direction,omitempty"`
	LandedOnPortal  bool             `json:"landed_exactly_on_portal"`
	StepsTaken      int              `json:"steps_taken"`
	Transitions     []transitionJSON `json:"transitions,omitempty"`
	Banner          string           `json:"banner,omitempty"`
}

type pathEntry struct {
	Ring    int  `json:"ring"`
	TileID  int  `json:"tile_id"`
	Arrival bool `json:"arrival,omitempty"`
}

type transitionJSON struct {
	Ring   int    `json:"ring"`
	TileID int    `json:"tile_id"`
	Event  string `json:"event"`
	Action string `json:"action"`
}

func runMove(cmd *cobra.Command, _ []string) {
	layout := resolveLayout()
	store, err := layout.Store()
	if err != nil {
		fatal("Error building board", err)
	}

	opts, err := config.ParseOverrides(flagOverrides)
	if err != nil {
		fatal("Error parsing overrides", err)
	}

	ring := board.RingNumber(flagMoveRing)
	if !ring.Valid() {
		fatal("Error", fmt.Errorf("%w: %d", board.ErrInvalidRing, flagMoveRing))
	}
	tile := flagMoveTile
	if !cmd.Flags().Changed("tile") {
		tile = store.Offset(ring)
	}

	roll := dice.Result{Total: flagMoveRoll}
	if !cmd.Flags().Changed("roll") {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		roll, err = dice.Roll(dice.NewSeeded(seed), layout.DiceSpec())
		if err != nil {
			fatal("Error rolling dice", err)
		}
	}

	result, err := board.CalculateMovement(store, ring, tile, roll.Total, opts)
	if err != nil {
		fatal("Error", err)
	}
	logger.Debug("move resolved", "ring", ring, "tile", tile, "roll", roll.Total, "final", result.FinalTileID)

	out := newMoveOutput(layout, ring, tile, roll, result)
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fatal("Error encoding result", err)
		}
		return
	}
	printMove(out)
}

func newMoveOutput(layout config.Layout, ring board.RingNumber, tile int, roll dice.Result, result board.MovementResult) moveOutput {
	out := moveOutput{
		StartRing:       int(ring),
		StartTile:       tile,
		Roll:            roll.Total,
		Faces:           roll.Faces,
		Path:            make([]pathEntry, 0, len(result.Path)),
		FinalRing:       int(result.FinalRing),
		FinalTile:       result.FinalTileID,
		PortalTriggered: result.PortalTriggered,
		PortalDirection: string(result.PortalDirection),
		LandedOnPortal:  result.LandedExactlyOnPortal,
		StepsTaken:      result.StepsTaken,
		Banner:          game.Banner(result),
	}
	for _, s := range result.Path {
		out.Path = append(out.Path, pathEntry{Ring: int(s.Ring), TileID: s.TileID, Arrival: s.Arrival})
	}
	for _, t := range result.Transitions {
		out.Transitions = append(out.Transitions, transitionJSON{
			Ring:   int(t.Ring),
			TileID: t.TileID,
			Event:  t.Event.String(),
			Action: t.Action.String(),
		})
	}
	if t, ok := layout.Tile(result.FinalTileID); ok {
		out.FinalTileName = t.Name
	}
	return out
}

func printMove(out moveOutput) {
	fmt.Printf("Start:  Ring %d tile %d\n", out.StartRing, out.StartTile)
	if len(out.Faces) > 0 {
		faces := make([]string, len(out.Faces))
		for i, f := range out.Faces {
			faces[i] = strconv.Itoa(f)
		}
		fmt.Printf("Roll:   %s = %d\n", strings.Join(faces, "+"), out.Roll)
	} else {
		fmt.Printf("Roll:   %d\n", out.Roll)
	}

	hops := make([]string, len(out.Path))
	for i, p := range out.Path {
		if p.Arrival {
			hops[i] = fmt.Sprintf("[%d]", p.TileID)
		} else {
			hops[i] = strconv.Itoa(p.TileID)
		}
	}
	fmt.Printf("Path:   %s\n", strings.Join(hops, " "))
	fmt.Printf("Final:  Ring %d tile %d %s\n", out.FinalRing, out.FinalTile, out.FinalTileName)
	fmt.Printf("Steps:  %d\n", out.StepsTaken)

	if out.PortalDirection != "" {
		fmt.Printf("Portal: %s\n", out.PortalDirection)
	}
	if out.LandedOnPortal {
		fmt.Println("Landed exactly on a portal")
	}
	for _, t := range out.Transitions {
		fmt.Printf("  Ring %d portal %d on %s: %s\n", t.Ring, t.TileID, t.Event, t.Action)
	}
	if out.Banner != "" {
		fmt.Println()
		fmt.Println(out.Banner)
	}
}
