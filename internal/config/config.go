// Package config provides YAML-based board layout loading and validation.
package config

import (
	"github.com/vovakirdan/ringboard/internal/board"
	"github.com/vovakirdan/ringboard/internal/dice"
)

// Layout is a complete board definition: three rings, their tiles and the
// dice used to move on them.
type Layout struct {
	ID    string       `yaml:"id"`
	Title string       `yaml:"title"`
	Dice  DiceConfig   `yaml:"dice"`
	Rings []RingConfig `yaml:"rings"`
}

// DiceConfig defines how many dice are rolled per turn.
type DiceConfig struct {
	Count int `yaml:"count"`
	Sides int `yaml:"sides"`
}

// RingConfig defines one ring. TileCount is len(Tiles).
type RingConfig struct {
	Number           int          `yaml:"number"`
	Name             string       `yaml:"name"`
	Offset           int          `yaml:"offset"`
	RewardMultiplier float64      `yaml:"reward_multiplier"`
	RiskMultiplier   float64      `yaml:"risk_multiplier"`
	Portal           PortalConfig `yaml:"portal"`
	Tiles            []TileConfig `yaml:"tiles"`
}

// PortalConfig defines the ring's portal tile and its two rule slots.
type PortalConfig struct {
	Index  int          `yaml:"index"`
	Name   string       `yaml:"name"`
	OnPass ActionConfig `yaml:"on_pass"`
	OnLand ActionConfig `yaml:"on_land"`
}

// ActionConfig is the YAML form of board.PortalAction.
type ActionConfig struct {
	Action     string `yaml:"action"`
	TargetRing int    `yaml:"target_ring,omitempty"`
	TargetTile int    `yaml:"target_tile,omitempty"` // absolute id
}

// TileKind classifies a tile for the reward and event layer.
type TileKind string

const (
	TileCorner      TileKind = "corner"
	TileStock       TileKind = "stock"
	TileQuickReward TileKind = "quick_reward"
	TileMysteryBox  TileKind = "mystery_box"
	TileWildcard    TileKind = "wildcard"
	TileEvent       TileKind = "event"
	TilePortal      TileKind = "portal"
	TileThrone      TileKind = "throne"
)

// TileConfig is a single tile's metadata. The simulator never reads it.
type TileConfig struct {
	Name string   `yaml:"name"`
	Kind TileKind `yaml:"kind"`
}

// Tile is a resolved tile with its position on the board.
type Tile struct {
	ID     int
	Ring   board.RingNumber
	Index  int
	Name   string
	Kind   TileKind
	Portal bool
}

// PortalAction converts the YAML action into the board type.
func (a ActionConfig) PortalAction() board.PortalAction {
	return board.PortalAction{
		Kind:       board.ActionKind(a.Action),
		TargetRing: board.RingNumber(a.TargetRing),
		TargetTile: a.TargetTile,
	}
}

// Clone returns a copy of the layout that shares no slices with l.
func (l Layout) Clone() Layout {
	out := l
	if l.Rings != nil {
		out.Rings = make([]RingConfig, len(l.Rings))
		for i, r := range l.Rings {
			r.Tiles = append([]TileConfig(nil), r.Tiles...)
			out.Rings[i] = r
		}
	}
	return out
}

// TileCount returns the number of tiles on the ring.
func (r RingConfig) TileCount() int {
	return len(r.Tiles)
}

// Board converts the ring into its board form.
func (r RingConfig) Board() board.Ring {
	return board.Ring{
		Number:           board.RingNumber(r.Number),
		Name:             r.Name,
		TileCount:        r.TileCount(),
		TileIDOffset:     r.Offset,
		RewardMultiplier: r.RewardMultiplier,
		RiskMultiplier:   r.RiskMultiplier,
		Portal: board.Portal{
			Index:  r.Portal.Index,
			Name:   r.Portal.Name,
			OnPass: r.Portal.OnPass.PortalAction(),
			OnLand: r.Portal.OnLand.PortalAction(),
		},
	}
}

// Store validates the layout and builds the read-only ring store.
func (l Layout) Store() (*board.Store, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	rings := make([]board.Ring, 0, len(l.Rings))
	for _, r := range l.Rings {
		rings = append(rings, r.Board())
	}
	return board.NewStore(rings...)
}

// DiceSpec returns the dice rolled each turn.
func (l Layout) DiceSpec() dice.Spec {
	return dice.Spec{Count: l.Dice.Count, Sides: l.Dice.Sides}
}

// Ring returns the ring with the given number.
func (l Layout) Ring(n board.RingNumber) (RingConfig, bool) {
	for _, r := range l.Rings {
		if board.RingNumber(r.Number) == n {
			return r, true
		}
	}
	return RingConfig{}, false
}

// Tile looks up tile metadata by absolute id.
func (l Layout) Tile(id int) (Tile, bool) {
	for _, r := range l.Rings {
		idx := id - r.Offset
		if idx < 0 || idx >= len(r.Tiles) {
			continue
		}
		t := r.Tiles[idx]
		return Tile{
			ID:     id,
			Ring:   board.RingNumber(r.Number),
			Index:  idx,
			Name:   t.Name,
			Kind:   t.Kind,
			Portal: idx == r.Portal.Index,
		}, true
	}
	return Tile{}, false
}
