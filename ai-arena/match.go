package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"github.com/TheKrainBow/connect4/engine"
)

type contender struct {
	ID    string
	Depth int
	Elo   float64
}

type gameResult struct {
	First  contender
	Second contender
	// Winner is SideA when First won, SideB when Second won, 0 on a draw.
	Winner engine.Side
	Plies  int
	Rack   engine.Rack
}

type arena struct {
	backend      *backendClient
	logger       *slog.Logger
	rng          *rand.Rand
	openingPlies int
	eloK         float64
	// onGame is called after every finished game.
	onGame func(gameResult)
}

// randomOpening picks plies random open columns, alternating sides from an
// empty rack, and stops early on a decided position.
func (a *arena) randomOpening(plies int) []int {
	var rack engine.Rack
	side := engine.SideA
	opening := make([]int, 0, plies)
	for len(opening) < plies {
		cols := rack.OpenColumns()
		if len(cols) == 0 {
			break
		}
		col := cols[a.rng.Intn(len(cols))]
		rack.Drop(col, side)
		if _, won := engine.Winner(rack); won {
			break
		}
		opening = append(opening, col)
		side = side.Other()
	}
	return opening
}

// playGame plays first as side A against second as side B. Both sides ask the
// backend for their moves at their own depth.
func (a *arena) playGame(ctx context.Context, first, second contender, opening []int) (gameResult, error) {
	result := gameResult{First: first, Second: second}
	side := engine.SideA
	for _, col := range opening {
		if !result.Rack.Open(col) {
			return result, fmt.Errorf("opening column %d is closed", col)
		}
		result.Rack.Drop(col, side)
		result.Plies++
		side = side.Other()
	}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if winner, ok := engine.Winner(result.Rack); ok {
			result.Winner = winner
			return result, nil
		}
		if engine.Draw(result.Rack) {
			return result, nil
		}
		mover := first
		if side == engine.SideB {
			mover = second
		}
		decision, err := a.backend.choose(ctx, result.Rack, side, mover.Depth)
		if err != nil {
			return result, fmt.Errorf("%s choose: %w", mover.ID, err)
		}
		if !decision.OK {
			return result, fmt.Errorf("%s found no move on a rack with open columns", mover.ID)
		}
		if decision.Column < 0 || decision.Column >= engine.Columns || !result.Rack.Open(decision.Column) {
			return result, fmt.Errorf("%s returned illegal column %d", mover.ID, decision.Column)
		}
		result.Rack.Drop(decision.Column, side)
		result.Plies++
		side = side.Other()
	}
}

// playHeadToHead plays the same opening twice with colors swapped and returns
// the points scored by x, in [0, 1].
func (a *arena) playHeadToHead(ctx context.Context, x, y contender, opening []int) (float64, error) {
	points := 0.0
	for _, xFirst := range []bool{true, false} {
		first, second := x, y
		if !xFirst {
			first, second = y, x
		}
		result, err := a.playGame(ctx, first, second, opening)
		if err != nil {
			return 0, err
		}
		if a.onGame != nil {
			a.onGame(result)
		}
		switch result.Winner {
		case engine.SideA:
			if xFirst {
				points += 1.0
			}
		case engine.SideB:
			if !xFirst {
				points += 1.0
			}
		default:
			points += 0.5
		}
	}
	return points / 2.0, nil
}

// runRoundRobin pairs every contender with every other one for rounds
// openings and returns the field sorted by Elo.
func (a *arena) runRoundRobin(ctx context.Context, field []contender, rounds int) ([]contender, error) {
	for round := 0; round < rounds; round++ {
		opening := a.randomOpening(a.openingPlies)
		for i := 0; i < len(field); i++ {
			for j := i + 1; j < len(field); j++ {
				result, err := a.playHeadToHead(ctx, field[i], field[j], opening)
				if err != nil {
					return field, err
				}
				updateElo(&field[i], &field[j], result, a.eloK)
				a.logger.Info("pairing finished",
					slog.Int("round", round+1),
					slog.String("x", field[i].ID),
					slog.String("y", field[j].ID),
					slog.Float64("x_points", result),
				)
			}
		}
	}
	ranked := make([]contender, len(field))
	copy(ranked, field)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Elo > ranked[j].Elo })
	return ranked, nil
}

func updateElo(a *contender, b *contender, resultForA float64, k float64) {
	expA := 1.0 / (1.0 + math.Pow(10, (b.Elo-a.Elo)/400.0))
	expB := 1.0 / (1.0 + math.Pow(10, (a.Elo-b.Elo)/400.0))
	a.Elo += k * (resultForA - expA)
	b.Elo += k * ((1.0 - resultForA) - expB)
}

func buildField(depths []int, baseElo float64) []contender {
	field := make([]contender, 0, len(depths))
	for _, depth := range depths {
		field = append(field, contender{ID: fmt.Sprintf("depth-%d", depth), Depth: depth, Elo: baseElo})
	}
	return field
}
