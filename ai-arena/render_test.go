package main

import (
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"

	"github.com/TheKrainBow/connect4/engine"
)

func TestRenderRackPlain(t *testing.T) {
	var rack engine.Rack
	rack.Drop(0, engine.SideA)
	rack.Drop(6, engine.SideB)

	out := renderRack(aurora.NewAurora(false), rack)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != engine.Rows+1 {
		t.Fatalf("expected %d lines, got %d", engine.Rows+1, len(lines))
	}
	want := "| X  .  .  .  .  .  O |"
	if lines[engine.Rows-1] != want {
		t.Fatalf("expected %q, got %q", want, lines[engine.Rows-1])
	}
	if lines[0] != "| .  .  .  .  .  .  . |" {
		t.Fatalf("expected empty top row, got %q", lines[0])
	}
	if !strings.Contains(lines[engine.Rows], " 6 ") {
		t.Fatalf("expected column index footer, got %q", lines[engine.Rows])
	}
}

func TestRenderRackColored(t *testing.T) {
	var rack engine.Rack
	rack.Drop(3, engine.SideA)
	out := renderRack(aurora.NewAurora(true), rack)
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI escapes in colored output")
	}
}

func TestResultLabel(t *testing.T) {
	au := aurora.NewAurora(false)
	result := gameResult{First: contender{ID: "depth-2"}, Second: contender{ID: "depth-4"}}
	if got := resultLabel(au, result); got != "draw" {
		t.Fatalf("expected draw, got %q", got)
	}
	result.Winner = engine.SideB
	if got := resultLabel(au, result); got != "depth-4 (O) wins" {
		t.Fatalf("expected depth-4 (O) wins, got %q", got)
	}
}
