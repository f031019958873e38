package registry

import (
	"testing"

	"github.com/vovakirdan/hexmines/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string { return g.id }

func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub_b", func() Game { return &stubGame{id: "test_stub_b"} })
	Register("test_stub_a", func() Game { return &stubGame{id: "test_stub_a"} })

	if !Exists("test_stub_a") {
		t.Fatal("Exists() should report registered game")
	}
	if Exists("test_stub_missing") {
		t.Error("Exists() should be false for unknown game")
	}

	g, err := Create("test_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_stub_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("test_stub_missing"); err == nil {
		t.Error("Create() should fail for unknown game")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "test_stub_a" || info.ID == "test_stub_b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("List() title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test_stub_a" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_stub_dup", func() Game { return &stubGame{id: "test_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Registering a duplicate ID should panic")
		}
	}()
	Register("test_stub_dup", func() Game { return &stubGame{id: "test_stub_dup"} })
}
