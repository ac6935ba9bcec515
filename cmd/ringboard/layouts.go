package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringboard/internal/config"
	"github.com/vovakirdan/ringboard/internal/registry"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List registered layouts",
	Long:  `Shows the built-in layout and every valid layout found in ~/.ringboard/layouts.`,
	Args:  cobra.NoArgs,
	Run:   runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	layouts := registry.List()

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, l := range layouts {
		marker := ""
		if l.ID == config.DefaultLayoutID {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, l.ID, l.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'ringboard play --layout <id>' to play a layout.")
}
