package engine

import "testing"

// rackFromRows builds a rack from rows drawn top to bottom with 'A', 'B' and '.'.
func rackFromRows(t *testing.T, rows ...string) Rack {
	t.Helper()
	var rack Rack
	if len(rows) != Rows {
		t.Fatalf("expected %d rows, got %d", Rows, len(rows))
	}
	for row, line := range rows {
		if len(line) != Columns {
			t.Fatalf("row %d: expected %d cells, got %d", row, Columns, len(line))
		}
		for col, ch := range line {
			switch ch {
			case 'A':
				rack[row][col] = CellA
			case 'B':
				rack[row][col] = CellB
			case '.':
				rack[row][col] = CellEmpty
			default:
				t.Fatalf("row %d: unexpected cell %q", row, ch)
			}
		}
	}
	return rack
}

// drawnRack is full and holds no four in a row for either side.
func drawnRack(t *testing.T) Rack {
	return rackFromRows(t,
		"AABBAAB",
		"BBAABBA",
		"AABBAAB",
		"BBAABBA",
		"AABBAAB",
		"BBAABBA",
	)
}
