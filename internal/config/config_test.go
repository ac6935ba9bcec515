package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/ringboard/internal/board"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	if l.ID != DefaultLayoutID {
		t.Errorf("ID = %q, expected %q", l.ID, DefaultLayoutID)
	}
	if l.Dice.Count != 2 || l.Dice.Sides != 6 {
		t.Errorf("dice = %dd%d, expected 2d6", l.Dice.Count, l.Dice.Sides)
	}

	tests := []struct {
		ring      board.RingNumber
		tileCount int
		offset    int
	}{
		{board.Ring1, 35, 0},
		{board.Ring2, 24, 200},
		{board.Ring3, 7, 300},
	}
	for _, tc := range tests {
		r, ok := l.Ring(tc.ring)
		if !ok {
			t.Fatalf("ring %d missing", tc.ring)
		}
		if r.TileCount() != tc.tileCount {
			t.Errorf("ring %d TileCount() = %d, expected %d", tc.ring, r.TileCount(), tc.tileCount)
		}
		if r.Offset != tc.offset {
			t.Errorf("ring %d Offset = %d, expected %d", tc.ring, r.Offset, tc.offset)
		}
	}
}

func TestLayoutStore(t *testing.T) {
	store, err := DefaultLayout().Store()
	if err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	if got := store.DefaultAction(board.Ring3, board.EventLand); got.Kind != board.ActionThrone {
		t.Errorf("ring 3 on_land = %v, expected throne", got)
	}
	if got := store.DefaultAction(board.Ring2, board.EventPass); got != (board.PortalAction{
		Kind: board.ActionDescend, TargetRing: board.Ring1, TargetTile: 0,
	}) {
		t.Errorf("ring 2 on_pass = %v", got)
	}

	// Sample scenario: passing the Fall Portal drops to ring 1.
	result, err := board.CalculateMovement(store, board.Ring2, 210, 5, board.MovementOptions{})
	if err != nil {
		t.Fatalf("CalculateMovement() error: %v", err)
	}
	if !result.PortalTriggered || result.PortalDirection != board.DirectionDown || result.FinalRing != board.Ring1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestLayoutTile(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		id     int
		name   string
		kind   TileKind
		portal bool
	}{
		{0, "Start", TileCorner, false},
		{17, "Big Fish Portal", TilePortal, true},
		{212, "Fall Portal", TilePortal, true},
		{306, "Throne", TileThrone, true},
	}
	for _, tc := range tests {
		tile, ok := l.Tile(tc.id)
		if !ok {
			t.Errorf("Tile(%d) not found", tc.id)
			continue
		}
		if tile.Name != tc.name || tile.Kind != tc.kind || tile.Portal != tc.portal {
			t.Errorf("Tile(%d) = %+v", tc.id, tile)
		}
	}

	if _, ok := l.Tile(100); ok {
		t.Error("Tile(100) should not exist")
	}
}

func TestValidateRejectsBrokenLayouts(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Layout)
		wantSub string
	}{
		{"no id", func(l *Layout) { l.ID = "" }, "id is required"},
		{"bad dice", func(l *Layout) { l.Dice.Sides = 0 }, "dice"},
		{"dice above roll cap", func(l *Layout) { l.Dice.Count, l.Dice.Sides = 2, board.MaxRoll }, "can roll above"},
		{"two rings", func(l *Layout) { l.Rings = l.Rings[:2] }, "expected 3 rings"},
		{"ring number", func(l *Layout) { l.Rings[0].Number = 4 }, "must be 1, 2 or 3"},
		{"portal range", func(l *Layout) { l.Rings[2].Portal.Index = 9 }, "portal index 9"},
		{"unknown action", func(l *Layout) { l.Rings[0].Portal.OnPass.Action = "teleport" }, "unknown action"},
		{"missing target ring", func(l *Layout) { l.Rings[0].Portal.OnLand.TargetRing = 5 }, "missing ring 5"},
		{"target tile off ring", func(l *Layout) { l.Rings[1].Portal.OnPass.TargetTile = 99 }, "target tile 99"},
		{"overlap", func(l *Layout) { l.Rings[1].Offset = 10 }, "inside ring 1"},
		{"empty tiles", func(l *Layout) { l.Rings[2].Tiles = nil }, "no tiles"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := DefaultLayout()
			tc.mutate(&l)

			err := l.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("error should wrap ErrInvalidLayout: %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

const miniLayout = `
id: %s
title: Mini
dice: {count: 1, sides: 4}
rings:
  - number: 1
    name: Outer
    offset: 0
    portal:
      index: 2
      on_pass: {action: stay}
      on_land: {action: ascend, target_ring: 2, target_tile: 10}
    tiles: [{name: A}, {name: B}, {name: C}, {name: D}]
  - number: 2
    name: Middle
    offset: 10
    portal:
      index: 1
      on_pass: {action: descend, target_ring: 1, target_tile: 0}
      on_land: {action: ascend, target_ring: 3, target_tile: 20}
    tiles: [{name: E}, {name: F}, {name: G}]
  - number: 3
    name: Inner
    offset: 20
    portal:
      index: 1
      on_pass: {action: descend, target_ring: 2, target_tile: 10}
      on_land: {action: throne}
    tiles: [{name: H}, {name: Throne, kind: throne}]
`

func writeLayout(t *testing.T, dir, file, id string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	data := strings.Replace(miniLayout, "%s", id, 1)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeLayout(t, dir, "mini.yaml", "mini")

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if l.ID != "mini" || len(l.Rings) != 3 {
		t.Errorf("unexpected layout: %+v", l)
	}
	if _, err := l.Store(); err != nil {
		t.Errorf("Store() error: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "b.yaml", "zeta")
	writeLayout(t, dir, "a.yml", "alpha")
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("id: [nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}

	layouts, skipped, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if len(layouts) != 2 {
		t.Fatalf("expected 2 layouts, got %d", len(layouts))
	}
	if layouts[0].ID != "alpha" || layouts[1].ID != "zeta" {
		t.Errorf("layouts not sorted by id: %s, %s", layouts[0].ID, layouts[1].ID)
	}
	if len(skipped) != 1 {
		t.Errorf("expected 1 skipped file, got %d", len(skipped))
	}
}

func TestParseOverrides(t *testing.T) {
	opts, err := ParseOverrides([]string{"1:land=ascend:3:303", "3:pass=throne", "1:pass=teleport"})
	if err != nil {
		t.Fatalf("ParseOverrides() error: %v", err)
	}

	o := opts.PortalOverrides[board.Ring1]
	if o.OnLand == nil || *o.OnLand != (board.PortalAction{Kind: board.ActionAscend, TargetRing: board.Ring3, TargetTile: 303}) {
		t.Errorf("ring 1 OnLand = %+v", o.OnLand)
	}
	if o.OnPass == nil || o.OnPass.Kind != "teleport" {
		t.Errorf("ring 1 OnPass = %+v", o.OnPass)
	}
	if p := opts.PortalOverrides[board.Ring3].OnPass; p == nil || p.Kind != board.ActionThrone {
		t.Errorf("ring 3 OnPass = %+v", p)
	}
	if _, ok := opts.PortalOverrides[board.Ring2]; ok {
		t.Error("ring 2 should have no override")
	}

	empty, err := ParseOverrides(nil)
	if err != nil || empty.PortalOverrides != nil {
		t.Errorf("ParseOverrides(nil) = %+v, %v", empty, err)
	}
}

func TestParseOverridesErrors(t *testing.T) {
	bad := []string{
		"1:land",
		"land=stay",
		"4:land=stay",
		"1:hover=stay",
		"1:land=ascend:3",
		"1:land=ascend:x:300",
		"1:land=ascend:3:y",
	}
	for _, spec := range bad {
		if _, err := ParseOverrides([]string{spec}); err == nil {
			t.Errorf("ParseOverrides(%q) should fail", spec)
		}
	}
}
