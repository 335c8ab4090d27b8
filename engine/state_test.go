package engine

import "testing"

func TestChildrenOfEmptyRack(t *testing.T) {
	root := NewRoot(Rack{}, SideA)
	children := root.Children()
	if len(children) != Columns {
		t.Fatalf("expected %d children, got %d", Columns, len(children))
	}
	for col, child := range children {
		if child.Depth() != 1 {
			t.Fatalf("child %d: expected depth 1, got %d", col, child.Depth())
		}
		if child.ToMove() != SideB {
			t.Fatalf("child %d: expected side B to move, got %s", col, child.ToMove())
		}
		if child.Rack().At(Rows-1, col) != CellA {
			t.Fatalf("child %d: expected A piece at bottom of column %d", col, col)
		}
	}
}

func TestChildrenNeverMutateParent(t *testing.T) {
	rack := rackFromRows(t,
		".......",
		".......",
		".......",
		"...B...",
		"..AA...",
		"B.ABA..",
	)
	root := NewRoot(rack, SideB)
	_ = root.Children()
	_ = root.ChildrenByColumn()
	if root.Rack() != rack {
		t.Fatalf("expected parent rack to be unchanged")
	}
}

func TestChildrenSkipClosedColumns(t *testing.T) {
	rack := drawnRack(t)
	rack.Set(0, 2, CellEmpty)
	rack.Set(0, 6, CellEmpty)
	root := NewRoot(rack, SideA)

	succ := root.Successors()
	if len(succ) != 2 || succ[0].Column != 2 || succ[1].Column != 6 {
		t.Fatalf("expected successors for columns 2 and 6, got %+v", succ)
	}
	byCol := root.ChildrenByColumn()
	for col, child := range byCol {
		open := col == 2 || col == 6
		if open && child == nil {
			t.Fatalf("expected child for open column %d", col)
		}
		if !open && child != nil {
			t.Fatalf("expected no child for closed column %d", col)
		}
	}
	if byCol[2].Rack().At(0, 2) != CellA {
		t.Fatalf("expected piece to land in the only empty cell of column 2")
	}
}

func TestFullRackHasNoChildren(t *testing.T) {
	root := NewRoot(drawnRack(t), SideA)
	if n := len(root.Children()); n != 0 {
		t.Fatalf("expected no children, got %d", n)
	}
	for col, child := range root.ChildrenByColumn() {
		if child != nil {
			t.Fatalf("expected nil entry for column %d", col)
		}
	}
}

// Every child differs from its parent in exactly one cell, the lowest empty
// cell of an open column, and the cell above it (if any) is still empty.
func TestChildDropInvariant(t *testing.T) {
	racks := []Rack{
		{},
		rackFromRows(t,
			"A......",
			"B..A...",
			"A..B...",
			"B..A..B",
			"A.BB..A",
			"BAAA.BB",
		),
	}
	for _, rack := range racks {
		parent := NewRoot(rack, SideB)
		children := parent.Successors()
		if len(children) > Columns {
			t.Fatalf("expected at most %d children, got %d", Columns, len(children))
		}
		for _, next := range children {
			if !rack.Open(next.Column) {
				t.Fatalf("child generated for closed column %d", next.Column)
			}
			changed := 0
			for row := 0; row < Rows; row++ {
				for col := 0; col < Columns; col++ {
					before := rack.At(row, col)
					after := next.State.Rack().At(row, col)
					if before == after {
						continue
					}
					changed++
					if col != next.Column || before != CellEmpty || after != CellB {
						t.Fatalf("unexpected change at (%d,%d): %s -> %s", row, col, before, after)
					}
					if row+1 < Rows && rack.At(row+1, col) == CellEmpty {
						t.Fatalf("piece in column %d did not fall to the lowest empty row", col)
					}
					if row > 0 && next.State.Rack().At(row-1, col) != CellEmpty {
						t.Fatalf("cell above landing row in column %d is not empty", col)
					}
				}
			}
			if changed != 1 {
				t.Fatalf("column %d: expected one changed cell, got %d", next.Column, changed)
			}
		}
	}
}

func TestDepthAndSideAlternate(t *testing.T) {
	state := NewRoot(Rack{}, SideB)
	for ply := 1; ply <= 4; ply++ {
		children := state.Children()
		state = children[0]
		if state.Depth() != ply {
			t.Fatalf("expected depth %d, got %d", ply, state.Depth())
		}
		want := SideB
		if ply%2 == 1 {
			want = SideA
		}
		if state.ToMove() != want {
			t.Fatalf("ply %d: expected %s to move, got %s", ply, want, state.ToMove())
		}
	}
}
