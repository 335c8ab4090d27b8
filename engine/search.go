package engine

import (
	"log/slog"
	"math"
	"time"
)

// NoMove is returned as the column when every column is full.
const NoMove = -1

type SearchStats struct {
	Start       time.Time     `json:"-"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Nodes       int64         `json:"nodes"`
	Evaluations int64         `json:"evaluations"`
	Cutoffs     int64         `json:"cutoffs"`
}

// Analysis is the outcome of one root search. Scores holds the minimax value
// of every open column and nil for closed ones.
type Analysis struct {
	Column int           `json:"column"`
	OK     bool          `json:"ok"`
	Scores [Columns]*int `json:"scores"`
	Stats  SearchStats   `json:"stats"`
	Side   Side          `json:"side"`
	Depth  int           `json:"depth"`
}

// Searcher runs plain minimax with a depth and score cutoff. A Searcher keeps
// no state between calls apart from its configuration; independent searches
// may run on separate Searchers concurrently.
type Searcher struct {
	config Config
	logger *slog.Logger
	stats  *SearchStats
}

func NewSearcher(config Config, logger *slog.Logger) (*Searcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{config: config, logger: logger}, nil
}

func (s *Searcher) Config() Config {
	return s.config
}

// ChooseColumn returns the column to play for the configured side, or
// (NoMove, false) when the rack is full.
func (s *Searcher) ChooseColumn(rack Rack) (int, bool) {
	analysis := s.Analyze(rack)
	return analysis.Column, analysis.OK
}

func (s *Searcher) Analyze(rack Rack) Analysis {
	stats := &SearchStats{Start: time.Now()}
	s.stats = stats
	defer func() { s.stats = nil }()

	analysis := Analysis{Column: NoMove, Side: s.config.Side, Depth: s.config.MaxDepth}
	root := NewRoot(rack, s.config.Side)
	stats.Nodes++
	actions := root.ChildrenByColumn()

	// The first open column seeds the best score, so an open column is always
	// chosen even when its subtree returns a starting extreme.
	best := 0
	for col, child := range actions {
		if child == nil {
			continue
		}
		var score int
		if s.config.Side == SideA {
			score = s.minValue(*child)
			if analysis.Column == NoMove || score > best {
				best = score
				analysis.Column = col
			}
		} else {
			score = s.maxValue(*child)
			if analysis.Column == NoMove || score < best {
				best = score
				analysis.Column = col
			}
		}
		value := score
		analysis.Scores[col] = &value
	}
	analysis.OK = analysis.Column != NoMove

	stats.Elapsed = time.Since(stats.Start)
	analysis.Stats = *stats
	if s.config.LogSearchStats {
		logSearchStats(s.logger, analysis)
	}
	return analysis
}

// Cutoff stops expansion at the depth limit or once the position is already
// decided on the evaluator's scale.
func (s *Searcher) Cutoff(state State) bool {
	_, stop := s.leaf(state)
	return stop
}

func (s *Searcher) leaf(state State) (int, bool) {
	if state.depth >= s.config.MaxDepth {
		return s.evaluate(state), true
	}
	score := s.evaluate(state)
	return score, Decisive(score)
}

func (s *Searcher) evaluate(state State) int {
	if s.stats != nil {
		s.stats.Evaluations++
	}
	return Evaluate(state.rack)
}

// A state that is not cut off but has no children keeps the starting
// extreme (math.MinInt32 here, math.MaxInt32 in minValue) instead of being
// evaluated. Callers see it only on a full rack reached before the depth
// limit without a decisive score.
func (s *Searcher) maxValue(state State) int {
	s.visit()
	if score, stop := s.leaf(state); stop {
		s.cutoff()
		return score
	}
	v := math.MinInt32
	for _, child := range state.Children() {
		v = max(v, s.minValue(child))
	}
	return v
}

func (s *Searcher) minValue(state State) int {
	s.visit()
	if score, stop := s.leaf(state); stop {
		s.cutoff()
		return score
	}
	v := math.MaxInt32
	for _, child := range state.Children() {
		v = min(v, s.maxValue(child))
	}
	return v
}

func (s *Searcher) visit() {
	if s.stats != nil {
		s.stats.Nodes++
	}
}

func (s *Searcher) cutoff() {
	if s.stats != nil {
		s.stats.Cutoffs++
	}
}

func logSearchStats(logger *slog.Logger, analysis Analysis) {
	stats := analysis.Stats
	nps := 0.0
	if stats.Elapsed > 0 {
		nps = float64(stats.Nodes) / stats.Elapsed.Seconds()
	}
	logger.Info("search complete",
		slog.Int("column", analysis.Column),
		slog.Bool("ok", analysis.OK),
		slog.Int("depth", analysis.Depth),
		slog.String("side", analysis.Side.String()),
		slog.Int64("nodes", stats.Nodes),
		slog.Int64("evaluations", stats.Evaluations),
		slog.Int64("cutoffs", stats.Cutoffs),
		slog.Duration("elapsed", stats.Elapsed),
		slog.Float64("nps", nps),
	)
}
