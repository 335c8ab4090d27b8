package engine

import (
	"fmt"
	"strings"
)

const (
	Rows    = 6
	Columns = 7
)

type Cell int8

const (
	CellEmpty Cell = 0
	CellA     Cell = 1
	CellB     Cell = -1
)

type Side int8

const (
	SideA Side = 1
	SideB Side = -1
)

// Rack is the playing grid. Row 0 is the top row, row Rows-1 the bottom.
type Rack [Rows][Columns]Cell

func (c Cell) String() string {
	switch c {
	case CellA:
		return "A"
	case CellB:
		return "B"
	default:
		return "Empty"
	}
}

func (s Side) Other() Side {
	return -s
}

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return fmt.Sprintf("Side(%d)", int8(s))
	}
}

func CellFromSide(side Side) Cell {
	return Cell(side)
}

func (r Rack) At(row, col int) Cell {
	return r[row][col]
}

func (r *Rack) Set(row, col int, value Cell) {
	r[row][col] = value
}

func (r Rack) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < Rows && col < Columns
}

// Open reports whether a piece can still be dropped into col.
func (r Rack) Open(col int) bool {
	return r[0][col] == CellEmpty
}

// Drop places a piece for side in col and returns the row it landed on.
// The column must be open.
func (r *Rack) Drop(col int, side Side) int {
	for row := Rows - 1; row >= 0; row-- {
		if r[row][col] == CellEmpty {
			r[row][col] = CellFromSide(side)
			return row
		}
	}
	return -1
}

func (r Rack) OpenColumns() []int {
	cols := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if r.Open(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

func (r Rack) Full() bool {
	for col := 0; col < Columns; col++ {
		if r.Open(col) {
			return false
		}
	}
	return true
}

func (r Rack) CountEmpty() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if r[row][col] == CellEmpty {
				count++
			}
		}
	}
	return count
}

// String renders the rack top row first, one row per line, cells as -1/0/1.
func (r Rack) String() string {
	var b strings.Builder
	for row := 0; row < Rows; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < Columns; col++ {
			fmt.Fprintf(&b, "%d ", int8(r[row][col]))
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// ParseRack converts an externally supplied grid into a Rack. Only the shape
// and the cell values are checked; piece stacking is left as given.
func ParseRack(grid [][]int) (Rack, error) {
	var rack Rack
	if len(grid) != Rows {
		return rack, fmt.Errorf("got %d rows: %w", len(grid), ErrRackRows)
	}
	for row, cells := range grid {
		if len(cells) != Columns {
			return rack, fmt.Errorf("row %d has %d columns: %w", row, len(cells), ErrRackColumns)
		}
		for col, value := range cells {
			if value < -1 || value > 1 {
				return rack, fmt.Errorf("cell (%d,%d) = %d: %w", row, col, value, ErrCellValue)
			}
			rack[row][col] = Cell(value)
		}
	}
	return rack, nil
}

// Grid is the inverse of ParseRack.
func (r Rack) Grid() [][]int {
	grid := make([][]int, Rows)
	for row := 0; row < Rows; row++ {
		grid[row] = make([]int, Columns)
		for col := 0; col < Columns; col++ {
			grid[row][col] = int(r[row][col])
		}
	}
	return grid
}

func ParseSide(value int) (Side, error) {
	if value != int(SideA) && value != int(SideB) {
		return 0, fmt.Errorf("side %d: %w", value, ErrSide)
	}
	return Side(value), nil
}
