package engine

const (
	WindowLength = 4
	WinThreshold = 500000
)

// Per-window scores indexed by piece count. The two sides are deliberately
// not mirror images at four in a row.
var (
	windowScoresA = [WindowLength + 1]int{0, 1, 10, 100, 100000000}
	windowScoresB = [WindowLength + 1]int{0, -1, -10, -100, -10000000}
)

type cellPos struct {
	row int
	col int
}

type window [WindowLength]cellPos

var windows = buildWindows()

func buildWindows() []window {
	out := make([]window, 0, 69)
	// Rows.
	for row := 0; row < Rows; row++ {
		for start := 0; start <= Columns-WindowLength; start++ {
			out = append(out, collectWindow(row, start, 0, 1))
		}
	}
	// Cols.
	for col := 0; col < Columns; col++ {
		for start := 0; start <= Rows-WindowLength; start++ {
			out = append(out, collectWindow(start, col, 1, 0))
		}
	}
	// Diagonals (/), walking up and to the right from the bottom rows.
	for row := WindowLength - 1; row < Rows; row++ {
		for col := 0; col <= Columns-WindowLength; col++ {
			out = append(out, collectWindow(row, col, -1, 1))
		}
	}
	// Anti-diagonals (\)
	for row := 0; row <= Rows-WindowLength; row++ {
		for col := 0; col <= Columns-WindowLength; col++ {
			out = append(out, collectWindow(row, col, 1, 1))
		}
	}
	return out
}

func collectWindow(row, col, drow, dcol int) window {
	var w window
	for i := 0; i < WindowLength; i++ {
		w[i] = cellPos{row: row + i*drow, col: col + i*dcol}
	}
	return w
}

// Evaluate scores a rack from SideA's point of view: positive favors SideA,
// negative favors SideB. It does not depend on whose turn it is.
func Evaluate(rack Rack) int {
	total := 0
	for _, w := range windows {
		countA, countB := 0, 0
		for _, pos := range w {
			switch rack[pos.row][pos.col] {
			case CellA:
				countA++
			case CellB:
				countB++
			}
		}
		total += windowScore(countA, countB)
	}
	return total
}

func windowScore(countA, countB int) int {
	if countA > 0 && countB > 0 {
		return 0
	}
	if countA > 0 {
		return windowScoresA[countA]
	}
	return windowScoresB[countB]
}

// Decisive reports whether score is beyond the win threshold for either side.
func Decisive(score int) bool {
	return score >= WinThreshold || score <= -WinThreshold
}
