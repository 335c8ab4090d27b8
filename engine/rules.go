package engine

// Winner reports the side owning a complete four-cell window, if any. When a
// malformed rack holds lines for both sides, SideA is reported.
func Winner(rack Rack) (Side, bool) {
	foundB := false
	for _, w := range windows {
		first := rack[w[0].row][w[0].col]
		if first == CellEmpty {
			continue
		}
		complete := true
		for _, pos := range w[1:] {
			if rack[pos.row][pos.col] != first {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		if first == CellA {
			return SideA, true
		}
		foundB = true
	}
	if foundB {
		return SideB, true
	}
	return 0, false
}

// Draw reports a full rack with no winner.
func Draw(rack Rack) bool {
	if !rack.Full() {
		return false
	}
	_, won := Winner(rack)
	return !won
}
