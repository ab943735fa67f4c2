package glimmer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/glimmer/internal/config"
	"github.com/vovakirdan/glimmer/internal/core"
)

func plantCollectible(g *Game, x, y int) {
	g.display.WriteCell(x, y, core.Cell{Rune: '*', Fg: g.reserved.Collectible, Bg: core.ColorBlue})
}

func pressN(g *Game, code core.KeyCode, n int) {
	for i := 0; i < n; i++ {
		g.OnKey(core.RawKey(code))
	}
}

func TestIdleTicksKeepPosition(t *testing.T) {
	g, _ := newTestGame(t, 0)
	start := g.Snapshot()

	for i := 0; i < 50; i++ {
		if ev := g.OnTick(); ev != 0 {
			t.Fatalf("tick %d: unexpected events %b", i, ev)
		}
	}

	snap := g.Snapshot()
	if snap.X != start.X || snap.Y != start.Y {
		t.Errorf("idle position moved from (%d,%d) to (%d,%d)", start.X, start.Y, snap.X, snap.Y)
	}
	if snap.Score != start.Score || snap.Tick != 50 {
		t.Errorf("score/tick = %d/%d, want %d/50", snap.Score, snap.Tick, start.Score)
	}
}

func TestArrowMovesOneCell(t *testing.T) {
	tests := []struct {
		name   string
		code   core.KeyCode
		dx, dy int
	}{
		{"right", core.KeyArrowRight, 1, 0},
		{"left", core.KeyArrowLeft, -1, 0},
		{"down", core.KeyArrowDown, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, 0)
			start := g.Snapshot()

			g.OnKey(core.RawKey(tt.code))
			g.OnTick()

			snap := g.Snapshot()
			if snap.X != start.X+tt.dx || snap.Y != start.Y+tt.dy {
				t.Errorf("position = (%d,%d), want (%d,%d)", snap.X, snap.Y, start.X+tt.dx, start.Y+tt.dy)
			}
			if snap.DX != 0 || snap.DY != 0 {
				t.Errorf("pending delta not cleared: (%d,%d)", snap.DX, snap.DY)
			}
		})
	}
}

func TestMarkerDrawnAtPreviousPosition(t *testing.T) {
	g, scr := newTestGame(t, 0)
	marker := g.cfg.Colors.Marker.Color()

	g.OnKey(core.RawKey(core.KeyArrowRight))
	g.OnTick()

	// The marker lands on the cell the player stood on at draw time.
	c := scr.ReadCell(40, 12)
	if c.Rune != ' ' || c.Fg != marker || c.Bg != marker {
		t.Errorf("marker cell = %+v, want blank on %v", c, marker)
	}

	// The next tick repaints the old cell and draws the marker at the new one.
	g.OnTick()
	if got := scr.ReadCell(40, 12); got != EncodeDecoration(0, 40, 12, g.rngOffset, g.palette) {
		t.Errorf("old marker cell not repainted: %+v", got)
	}
	if got := scr.ReadCell(41, 12); got.Bg != marker {
		t.Errorf("marker not at new position: %+v", got)
	}
}

func TestKeysCompoundWithinTick(t *testing.T) {
	g, _ := newTestGame(t, 0)

	pressN(g, core.KeyArrowRight, 3)
	g.OnKey(core.RawKey(core.KeyArrowLeft))
	if g.dx != 2 {
		t.Fatalf("pending dx = %d, want 2", g.dx)
	}
	g.OnTick()

	if snap := g.Snapshot(); snap.X != 42 || snap.Y != 12 {
		t.Errorf("position = (%d,%d), want (42,12)", snap.X, snap.Y)
	}

	g.OnKey(core.RawKey(core.KeyArrowUp))
	g.OnKey(core.RawKey(core.KeyArrowDown))
	g.OnTick()
	if snap := g.Snapshot(); snap.X != 42 || snap.Y != 12 {
		t.Errorf("cancelled keys moved the player to (%d,%d)", snap.X, snap.Y)
	}
}

func TestNonArrowKeysIgnored(t *testing.T) {
	g, _ := newTestGame(t, 0)

	for _, k := range []core.Key{
		core.RuneKey('a'),
		core.RuneKey('~'),
		core.RuneKey('é'),
		core.RawKey(core.KeyEnter),
		core.RawKey(core.KeyEscape),
		core.RawKey(core.KeyOther),
	} {
		g.OnKey(k)
	}

	if g.dx != 0 || g.dy != 0 {
		t.Errorf("pending delta = (%d,%d), want (0,0)", g.dx, g.dy)
	}
}

func TestCollectIncrementsByOne(t *testing.T) {
	g, _ := newTestGame(t, 0)
	plantCollectible(g, 41, 12)

	g.OnKey(core.RawKey(core.KeyArrowRight))
	ev := g.OnTick()

	if !ev.Has(EventCollected) {
		t.Fatalf("expected collected event, got %b", ev)
	}
	snap := g.Snapshot()
	if snap.Score != 1 || snap.Progress != 1 {
		t.Errorf("score/progress = %d/%d, want 1/1", snap.Score, snap.Progress)
	}
	if snap.X != 41 {
		t.Errorf("player should stand on the collected cell, x = %d", snap.X)
	}
}

func TestCollectedCellIsConsumed(t *testing.T) {
	g, _ := newTestGame(t, 0)
	plantCollectible(g, 41, 12)

	g.OnKey(core.RawKey(core.KeyArrowRight))
	g.OnTick()

	g.OnKey(core.RawKey(core.KeyArrowLeft))
	g.OnTick()

	g.OnKey(core.RawKey(core.KeyArrowRight))
	ev := g.OnTick()

	if ev.Has(EventCollected) {
		t.Error("walking back onto a collected cell scored again")
	}
	if s := g.Snapshot().Score; s != 1 {
		t.Errorf("score = %d, want 1", s)
	}
}

func TestCollectibleAboveStartScores(t *testing.T) {
	// Seed 0 seeds a collectible at (40,11), right above the start cell.
	g, _ := newTestGame(t, 0)

	g.OnKey(core.RawKey(core.KeyArrowUp))
	ev := g.OnTick()

	if !ev.Has(EventCollected) || g.Snapshot().Score != 1 {
		t.Errorf("expected to collect at (40,11): events %b, score %d", ev, g.Snapshot().Score)
	}
}

func TestLevelUpAfterThreshold(t *testing.T) {
	g, scr := newTestGame(t, 0)
	threshold := g.cfg.Rules.LevelUpThreshold

	for i := 0; i < threshold; i++ {
		plantCollectible(g, g.pos.X+1, g.pos.Y)
		g.OnKey(core.RawKey(core.KeyArrowRight))
		ev := g.OnTick()
		if !ev.Has(EventCollected) || ev.Has(EventLevelUp) {
			t.Fatalf("collect %d: events %b", i, ev)
		}
	}

	before := g.Snapshot()
	wantOffset := before.RNGOffset + uint(Next(uint(before.X*before.Level+before.Score), 100))

	ev := g.OnTick()
	if !ev.Has(EventLevelUp) {
		t.Fatalf("expected level up after %d collections, events %b", threshold, ev)
	}

	snap := g.Snapshot()
	_, dup := expectedPlacements(g)
	if snap.Level != 1 {
		t.Errorf("level = %d, want 1", snap.Level)
	}
	if snap.RNGOffset != wantOffset {
		t.Errorf("rng offset = %d, want %d", snap.RNGOffset, wantOffset)
	}
	if snap.Progress != dup || snap.Score != before.Score+dup {
		t.Errorf("score/progress = %d/%d, want %d/%d", snap.Score, snap.Progress, before.Score+dup, dup)
	}
	if snap.X != 40 || snap.Y != 12 {
		t.Errorf("position after level up = (%d,%d), want (40,12)", snap.X, snap.Y)
	}
	if snap.Palette != BuildPalette(wantOffset, g.reserved) {
		t.Error("palette not rebuilt for the new offset")
	}

	// Every plain interior cell now shows the new level's decoration.
	w, h := g.Size()
	for y := 1; y < h; y++ {
		for x := 1; x < w-1; x++ {
			c := scr.ReadCell(x, y)
			if (x == snap.X && y == snap.Y) || c.Fg == g.reserved.Collectible {
				continue
			}
			if c != EncodeDecoration(1, x, y, snap.RNGOffset, snap.Palette) {
				t.Fatalf("cell (%d,%d) = %+v not repainted for level 1", x, y, c)
			}
		}
	}
}

func TestHazardEndsSession(t *testing.T) {
	tests := []struct {
		name  string
		code  core.KeyCode
		count int
	}{
		{"up into HUD row", core.KeyArrowUp, 12},
		{"left border", core.KeyArrowLeft, 40},
		{"right border", core.KeyArrowRight, 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, scr := newTestGame(t, 0)

			pressN(g, tt.code, tt.count)
			ev := g.OnTick()

			if !ev.Has(EventGameOver) {
				t.Fatalf("expected game over, events %b", ev)
			}
			snap := g.Snapshot()
			if snap.State != StateGameOver {
				t.Errorf("state = %s, want game_over", snap.State)
			}
			if snap.Score != 0 || snap.Level != 0 || snap.Progress != 0 {
				t.Errorf("counters not reset: %+v", snap)
			}
			if snap.X != 40 || snap.Y != 12 {
				t.Errorf("position = (%d,%d), want (40,12)", snap.X, snap.Y)
			}
			if !strings.Contains(scr.Row(11), "GAME OVER") {
				t.Errorf("banner missing, row 11 = %q", scr.Row(11))
			}
			if !strings.HasPrefix(scr.Row(0), "000") {
				t.Errorf("HUD should show zero score, row 0 = %q", scr.Row(0))
			}
		})
	}
}

func TestBottomRowWrapsIntoHUD(t *testing.T) {
	g, _ := newTestGame(t, 0)

	pressN(g, core.KeyArrowDown, 12)
	if ev := g.OnTick(); ev.Has(EventGameOver) {
		t.Fatal("bottom row should be playable")
	}
	if y := g.Snapshot().Y; y != 24 {
		t.Fatalf("y = %d, want 24", y)
	}

	g.OnKey(core.RawKey(core.KeyArrowDown))
	if ev := g.OnTick(); !ev.Has(EventGameOver) {
		t.Errorf("wrapping from the bottom row into row 0 should end the session, events %b", ev)
	}
}

func TestGameOverFreezes(t *testing.T) {
	g, scr := newTestGame(t, 0)
	pressN(g, core.KeyArrowUp, 12)
	g.OnTick()

	frozen := g.Snapshot()
	before := copyScreen(scr)

	for i := 0; i < 10; i++ {
		g.OnKey(core.RawKey(core.KeyArrowRight))
		if ev := g.OnTick(); ev != 0 {
			t.Fatalf("frozen tick produced events %b", ev)
		}
	}

	if g.Snapshot() != frozen {
		t.Errorf("snapshot changed while frozen: %+v vs %+v", g.Snapshot(), frozen)
	}
	if !screensEqual(before, scr) {
		t.Error("display changed while frozen")
	}
}

func TestStepReportsFinalScore(t *testing.T) {
	g, _ := newTestGame(t, 0)
	plantCollectible(g, 41, 12)

	in := core.NewInputFrame()
	in.Push(core.RawKey(core.KeyArrowRight))
	if res := g.Step(in); res.State.Score != 1 {
		t.Fatalf("score = %d, want 1", res.State.Score)
	}

	in.Clear()
	for i := 0; i < 12; i++ {
		in.Push(core.RawKey(core.KeyArrowUp))
	}
	res := g.Step(in)

	if !res.Ended || !res.State.GameOver {
		t.Fatalf("expected game over, got %+v", res)
	}
	if res.FinalScore != 1 || res.FinalLevel != 0 {
		t.Errorf("final score/level = %d/%d, want 1/0", res.FinalScore, res.FinalLevel)
	}
	if res.State.Score != 0 {
		t.Errorf("state score = %d, want 0 after reset", res.State.Score)
	}
}

func TestStepRestartAfterGameOver(t *testing.T) {
	g, scr := newTestGame(t, 5)
	fresh, _ := newTestGame(t, 5)

	in := core.NewInputFrame()
	for i := 0; i < 12; i++ {
		in.Push(core.RawKey(core.KeyArrowUp))
	}
	g.Step(in)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	// Restart is ignored while the session is running, so only test it frozen.
	in.Clear()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.GameOver {
		t.Fatal("restart did not reactivate the session")
	}
	if g.Snapshot() != fresh.Snapshot() {
		t.Errorf("restart snapshot %+v, want %+v", g.Snapshot(), fresh.Snapshot())
	}
	if !screensEqual(scr, fresh.Display().(*core.Screen)) {
		t.Error("restart did not repaint the initial grid")
	}
}

func TestStepPause(t *testing.T) {
	g, _ := newTestGame(t, 0)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	paused := g.Snapshot()

	in.Clear()
	in.Push(core.RawKey(core.KeyArrowRight))
	g.Step(in)
	if s := g.Snapshot(); s != paused {
		t.Errorf("paused game advanced: %+v", s)
	}

	in.Clear()
	in.Set(core.ActionPause)
	in.Push(core.RawKey(core.KeyArrowRight))
	res = g.Step(in)
	if res.State.Paused {
		t.Fatal("expected unpaused")
	}
	if s := g.Snapshot(); s.X != 41 || s.Tick != paused.Tick+1 {
		t.Errorf("after unpause x/tick = %d/%d, want 41/%d", s.X, s.Tick, paused.Tick+1)
	}
}

func TestHUDDigits(t *testing.T) {
	g, scr := newTestGame(t, 0)
	hud := g.cfg.Colors.HUD.Color()

	tests := []struct {
		score, level int
		left, right  string
	}{
		{0, 0, "000", "000"},
		{7, 12, "007", "012"},
		{123, 45, "123", "045"},
		{1234, 999, "234", "999"},
	}

	for _, tt := range tests {
		g.score, g.level = tt.score, tt.level
		g.drawHUD()
		row := scr.Row(0)
		if row[:3] != tt.left || row[77:] != tt.right {
			t.Errorf("HUD for %d/%d = %q...%q, want %q...%q", tt.score, tt.level, row[:3], row[77:], tt.left, tt.right)
		}
		if c := scr.ReadCell(1, 0); c.Fg != hud || c.Bg != g.reserved.Hazard {
			t.Errorf("HUD cell colors = %v/%v", c.Fg, c.Bg)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1, s1 := newTestGame(t, 12345)
	g2, s2 := newTestGame(t, 12345)

	keys := []core.KeyCode{core.KeyArrowUp, core.KeyArrowDown, core.KeyArrowLeft, core.KeyArrowRight}
	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		in.Clear()
		if i%3 == 0 {
			in.Push(core.RawKey(keys[Next(uint(i), len(keys))]))
		}
		if g1.State().GameOver {
			in.Set(core.ActionRestart)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	if !screensEqual(s1, s2) {
		t.Error("displays differ")
	}
}

func TestRandomWalkInvariants(t *testing.T) {
	g, _ := newTestGame(t, 42)
	w, h := g.Size()
	keys := []core.KeyCode{core.KeyArrowUp, core.KeyArrowDown, core.KeyArrowLeft, core.KeyArrowRight}

	for i := 0; i < 3000; i++ {
		if g.State().GameOver {
			g.Reset(g.runtime, g.display)
		}
		g.OnKey(core.RawKey(keys[Next(uint(i*7+3), len(keys))]))

		before := g.Snapshot()
		ev := g.OnTick()
		after := g.Snapshot()

		if ev.Has(EventGameOver) {
			if after.Score != 0 || after.Level != 0 {
				t.Fatalf("tick %d: game over without reset: %+v", i, after)
			}
			continue
		}
		if after.Score < before.Score {
			t.Fatalf("tick %d: score decreased from %d to %d", i, before.Score, after.Score)
		}
		if ev == EventCollected && after.Score != before.Score+1 {
			t.Fatalf("tick %d: collection moved score from %d to %d", i, before.Score, after.Score)
		}
		if after.X < 1 || after.X > w-2 || after.Y < 1 || after.Y > h-1 {
			t.Fatalf("tick %d: active player outside the playfield at (%d,%d)", i, after.X, after.Y)
		}
		if after.Progress >= g.cfg.Rules.LevelUpThreshold+g.cfg.Rules.CollectiblesPerLevel {
			t.Fatalf("tick %d: progress %d never consumed", i, after.Progress)
		}
	}
}

func TestRegistryVariants(t *testing.T) {
	if New().ID() != "glimmer" || NewClassic().ID() != "glimmer_classic" {
		t.Error("unexpected variant IDs")
	}

	g := NewClassic()
	if g.Config().Rules.LevelUpThreshold != 10 {
		t.Errorf("classic threshold = %d, want 10", g.Config().Rules.LevelUpThreshold)
	}
}

func TestEventsHas(t *testing.T) {
	ev := EventCollected | EventLevelUp
	if !ev.Has(EventCollected) || !ev.Has(EventLevelUp) || ev.Has(EventGameOver) {
		t.Errorf("Has mismatch for %b", ev)
	}
}

func writeGameConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glimmer.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func TestConfigFileThresholdReachesGame(t *testing.T) {
	writeGameConfig(t, "rules:\n  level_up_threshold: 5\n")

	tests := []struct {
		name   string
		preset string
		want   int
	}{
		{"default preset", "", 5},
		{"standard", "standard", 5},
		{"relaxed", "relaxed", 5},
		{"classic", "classic", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetPreset(tt.preset)
			t.Cleanup(func() { SetPreset("") })

			g := New()
			if got := g.Config().Rules.LevelUpThreshold; got != tt.want {
				t.Errorf("threshold = %d, want %d", got, tt.want)
			}
			if err := g.ConfigError(); err != nil {
				t.Errorf("ConfigError() = %v", err)
			}
		})
	}
}

func TestConfigFallbackIsReported(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		SetConfigPath(filepath.Join(t.TempDir(), "absent.yaml"))
		t.Cleanup(func() { SetConfigPath("") })

		g := New()
		if g.ConfigError() == nil {
			t.Error("ConfigError() = nil for a missing file")
		}
		if got, want := g.Config().Rules.LevelUpThreshold, config.DefaultGlimmerConfig().Rules.LevelUpThreshold; got != want {
			t.Errorf("threshold = %d, want default %d", got, want)
		}
	})

	t.Run("hud same as collectible", func(t *testing.T) {
		writeGameConfig(t, "colors:\n  hud: pink\n")

		g := New()
		if g.ConfigError() == nil {
			t.Error("ConfigError() = nil for hud colored like collectibles")
		}
		if g.Config().Colors.HUD == g.Config().Colors.Collectible {
			t.Error("game runs with a HUD that classifies as collectible")
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		SetPreset("turbo")
		t.Cleanup(func() { SetPreset("") })

		g := New()
		if g.ConfigError() == nil {
			t.Error("ConfigError() = nil for an unknown preset")
		}
		if got := g.Config().Rules.LevelUpThreshold; got != 3 {
			t.Errorf("threshold = %d, want standard 3", got)
		}
	})
}
