package main

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/TheKrainBow/connect4/engine"
)

// renderRack draws the rack top row first with the column numbers underneath.
func renderRack(au aurora.Aurora, rack engine.Rack) string {
	var b strings.Builder
	for row := 0; row < engine.Rows; row++ {
		b.WriteString(fmt.Sprint(au.White("|")))
		for col := 0; col < engine.Columns; col++ {
			switch rack.At(row, col) {
			case engine.CellA:
				b.WriteString(fmt.Sprint(au.Red(" X ")))
			case engine.CellB:
				b.WriteString(fmt.Sprint(au.Yellow(" O ")))
			default:
				b.WriteString(fmt.Sprint(au.Blue(" . ")))
			}
		}
		b.WriteString(fmt.Sprint(au.White("|")))
		b.WriteByte('\n')
	}
	b.WriteByte(' ')
	for col := 0; col < engine.Columns; col++ {
		fmt.Fprintf(&b, " %d ", col)
	}
	b.WriteByte('\n')
	return b.String()
}

func resultLabel(au aurora.Aurora, result gameResult) string {
	switch result.Winner {
	case engine.SideA:
		return fmt.Sprint(au.Red(fmt.Sprintf("%s (X) wins", result.First.ID)))
	case engine.SideB:
		return fmt.Sprint(au.Yellow(fmt.Sprintf("%s (O) wins", result.Second.ID)))
	default:
		return fmt.Sprint(au.Green("draw"))
	}
}
