package game

import (
	"fmt"

	"github.com/vovakirdan/ringboard/internal/board"
)

// Banner returns the announcement shown after a move, or "" when nothing
// noteworthy happened.
func Banner(result board.MovementResult) string {
	switch result.PortalDirection {
	case board.DirectionThrone:
		return "You reached the throne!"
	case board.DirectionUp:
		return fmt.Sprintf("You ascended to %s!", result.FinalRing)
	case board.DirectionDown:
		return fmt.Sprintf("You fell to %s!", result.FinalRing)
	default:
		return ""
	}
}
