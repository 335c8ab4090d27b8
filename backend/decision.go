package main

import (
	"fmt"
	"log/slog"

	"github.com/TheKrainBow/connect4/engine"
)

type chooseRequest struct {
	Rack  [][]int `json:"rack"`
	Side  *int    `json:"side,omitempty"`
	Depth *int    `json:"depth,omitempty"`
}

type evaluateRequest struct {
	Rack [][]int `json:"rack"`
}

type decisionResponse struct {
	Column      int                  `json:"column"`
	OK          bool                 `json:"ok"`
	Side        int                  `json:"side"`
	Depth       int                  `json:"depth"`
	Scores      [engine.Columns]*int `json:"scores"`
	Winner      int                  `json:"winner"`
	Full        bool                 `json:"full"`
	Nodes       int64                `json:"nodes"`
	Evaluations int64                `json:"evaluations"`
	ElapsedMs   float64              `json:"elapsed_ms"`
}

type evaluateResponse struct {
	Score    int  `json:"score"`
	Decisive bool `json:"decisive"`
	Winner   int  `json:"winner"`
	Full     bool `json:"full"`
}

// resolve validates the request against the current config. Side and depth
// default to the configured values.
func (req chooseRequest) resolve(base engine.Config) (engine.Rack, engine.Config, error) {
	rack, err := engine.ParseRack(req.Rack)
	if err != nil {
		return rack, base, err
	}
	config := base
	if req.Side != nil {
		side, err := engine.ParseSide(*req.Side)
		if err != nil {
			return rack, base, err
		}
		config.Side = side
	}
	if req.Depth != nil {
		config.MaxDepth = *req.Depth
	}
	if err := config.Validate(); err != nil {
		return rack, base, err
	}
	return rack, config, nil
}

func decide(base engine.Config, req chooseRequest, logger *slog.Logger) (decisionResponse, error) {
	rack, config, err := req.resolve(base)
	if err != nil {
		return decisionResponse{}, err
	}
	searcher, err := engine.NewSearcher(config, logger)
	if err != nil {
		return decisionResponse{}, fmt.Errorf("build searcher: %w", err)
	}
	analysis := searcher.Analyze(rack)
	effective := searcher.Config()
	return decisionResponse{
		Column:      analysis.Column,
		OK:          analysis.OK,
		Side:        int(effective.Side),
		Depth:       effective.MaxDepth,
		Scores:      analysis.Scores,
		Winner:      winnerOf(rack),
		Full:        rack.Full(),
		Nodes:       analysis.Stats.Nodes,
		Evaluations: analysis.Stats.Evaluations,
		ElapsedMs:   float64(analysis.Stats.Elapsed.Microseconds()) / 1000.0,
	}, nil
}

func evaluateRack(req evaluateRequest) (evaluateResponse, error) {
	rack, err := engine.ParseRack(req.Rack)
	if err != nil {
		return evaluateResponse{}, err
	}
	score := engine.Evaluate(rack)
	return evaluateResponse{
		Score:    score,
		Decisive: engine.Decisive(score),
		Winner:   winnerOf(rack),
		Full:     rack.Full(),
	}, nil
}

func winnerOf(rack engine.Rack) int {
	if side, ok := engine.Winner(rack); ok {
		return int(side)
	}
	return 0
}
