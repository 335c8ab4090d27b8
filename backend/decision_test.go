package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/TheKrainBow/connect4/engine"
)

func TestDecideReportsEffectiveConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	base := engine.Config{MaxDepth: 1, Side: engine.SideA}

	decision, err := decide(base, chooseRequest{Rack: emptyGrid(), Side: intPtr(-1), Depth: intPtr(2)}, logger)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decision.Side != -1 || decision.Depth != 2 {
		t.Fatalf("expected side -1 depth 2, got side %d depth %d", decision.Side, decision.Depth)
	}

	decision, err = decide(base, chooseRequest{Rack: emptyGrid()}, logger)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decision.Side != 1 || decision.Depth != 1 || decision.Column != 3 {
		t.Fatalf("expected side 1 depth 1 column 3, got side %d depth %d column %d", decision.Side, decision.Depth, decision.Column)
	}
}

func TestDecideRejectsDepthAboveCeiling(t *testing.T) {
	_, err := decide(engine.DefaultConfig(), chooseRequest{Rack: emptyGrid(), Depth: intPtr(9)}, nil)
	if err == nil || statusForError(err) != 400 {
		t.Fatalf("expected a 400 depth error, got %v", err)
	}
}
