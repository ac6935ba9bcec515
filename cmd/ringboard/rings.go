package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringboard/internal/board"
)

var ringsCmd = &cobra.Command{
	Use:   "rings",
	Short: "Show the ring table of the active layout",
	Long: `Print each ring's tile count, absolute id range, multipliers and
portal rules for the active layout.

Examples:
  ringboard rings
  ringboard rings --layout ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runRings,
}

func runRings(_ *cobra.Command, _ []string) {
	layout := resolveLayout()
	store, err := layout.Store()
	if err != nil {
		fatal("Error building board", err)
	}

	fmt.Printf("%s (%s), dice %s\n", layout.Title, layout.ID, layout.DiceSpec())
	fmt.Println()

	fmt.Printf("  %-4s  %-12s  %-5s  %-9s  %-6s  %-6s  %s\n", "Ring", "Name", "Tiles", "IDs", "Reward", "Risk", "Portal")
	fmt.Printf("  %-4s  %-12s  %-5s  %-9s  %-6s  %-6s  %s\n", "----", "----", "-----", "---", "------", "----", "------")

	for _, r := range store.Rings() {
		portalID := r.AbsoluteID(r.Portal.Index)
		fmt.Printf("  %-4d  %-12s  %-5d  %-9s  %-6s  %-6s  %d %s\n",
			int(r.Number),
			r.Name,
			r.TileCount,
			fmt.Sprintf("%d-%d", r.TileIDOffset, r.LastTileID()),
			fmt.Sprintf("x%g", r.RewardMultiplier),
			fmt.Sprintf("x%g", r.RiskMultiplier),
			portalID,
			r.Portal.Name,
		)
	}

	fmt.Println()
	fmt.Println("Portal rules:")
	for _, r := range store.Rings() {
		fmt.Printf("  %s  pass: %s\n", r.Number, store.DefaultAction(r.Number, board.EventPass))
		fmt.Printf("  %s  land: %s\n", r.Number, store.DefaultAction(r.Number, board.EventLand))
	}
}
