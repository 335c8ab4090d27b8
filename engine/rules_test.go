package engine

import "testing"

func TestWinnerDetectsEveryDirection(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want Side
	}{
		{"row", []string{".......", ".......", ".......", ".......", ".......", "...BBBB"}, SideB},
		{"column", []string{".......", ".......", "A......", "A......", "A......", "A......"}, SideA},
		{"ascending", []string{".......", ".......", "......A", ".....AB", "....ABB", "...ABBB"}, SideA},
		{"descending", []string{".......", ".......", "B......", "AB.....", "AAB....", "AAAB..."}, SideB},
	}
	for _, tc := range cases {
		side, ok := Winner(rackFromRows(t, tc.rows...))
		if !ok || side != tc.want {
			t.Fatalf("%s: expected winner %s, got %s (ok=%v)", tc.name, tc.want, side, ok)
		}
	}
}

func TestNoWinnerOnDrawnRack(t *testing.T) {
	rack := drawnRack(t)
	if _, ok := Winner(rack); ok {
		t.Fatalf("expected no winner")
	}
	if !Draw(rack) {
		t.Fatalf("expected full rack without a line to be a draw")
	}
	if Draw(Rack{}) {
		t.Fatalf("expected empty rack not to be a draw")
	}
}
