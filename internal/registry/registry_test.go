package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/glimmer/internal/core"
)

type stubGame struct {
	id    string
	title string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig, core.Display) { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b", title: "Stub B"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "Stub A"} })

	if !Exists("stub_a") || !Exists("stub_b") {
		t.Fatal("registered games should exist")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" || g.Title() != "Stub A" {
		t.Errorf("Create() = %s/%s, want stub_a/Stub A", g.ID(), g.Title())
	}

	other, _ := Create("stub_a")
	if other == g {
		t.Error("Create() should return a fresh instance each call")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("no_such_game") {
		t.Fatal("unexpected game registered")
	}
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

type reportingGame struct {
	stubGame
	err error
}

func (g *reportingGame) ConfigError() error { return g.err }

func TestConfigError(t *testing.T) {
	bad := errors.New("bad config")
	tests := []struct {
		name string
		game Game
		want error
	}{
		{"plain game", &stubGame{id: "plain"}, nil},
		{"clean config", &reportingGame{}, nil},
		{"fallback", &reportingGame{err: bad}, bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigError(tt.game); got != tt.want {
				t.Errorf("ConfigError() = %v, want %v", got, tt.want)
			}
		})
	}
}
