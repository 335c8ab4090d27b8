package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/logrusorgru/aurora"
)

const baseElo = 1200.0

func main() {
	noColor := getenv("ARENA_NO_COLOR", "") != ""
	logger := newLogger(os.Stderr, slog.LevelInfo, noColor)
	au := aurora.NewAurora(!noColor)

	baseURL := getenv("BACKEND_URL", "http://backend:8080")
	rounds := getenvInt("ARENA_ROUNDS", 4)
	openingPlies := getenvInt("ARENA_OPENING_PLIES", 2)
	depths, err := parseDepths(getenv("ARENA_DEPTHS", "2,4"))
	if err != nil {
		logger.Error("invalid ARENA_DEPTHS", slog.Any("error", err))
		os.Exit(2)
	}
	seed := int64(getenvInt("ARENA_SEED", int(time.Now().UnixNano()&0x7fffffff)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := &backendClient{
		client:  &http.Client{Timeout: 2 * time.Minute},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	if err := backend.waitReady(ctx, 60*time.Second); err != nil {
		logger.Error("backend unavailable", slog.String("url", baseURL), slog.Any("error", err))
		os.Exit(1)
	}

	a := &arena{
		backend:      backend,
		logger:       logger,
		rng:          rand.New(rand.NewSource(seed)),
		openingPlies: openingPlies,
		eloK:         24,
		onGame: func(result gameResult) {
			fmt.Fprint(os.Stdout, renderRack(au, result.Rack))
			fmt.Fprintf(os.Stdout, "%s vs %s: %s after %d plies\n\n",
				result.First.ID, result.Second.ID, resultLabel(au, result), result.Plies)
		},
	}
	logger.Info("arena starting",
		slog.String("backend", baseURL),
		slog.Any("depths", depths),
		slog.Int("rounds", rounds),
		slog.Int64("seed", seed),
	)
	ranked, err := a.runRoundRobin(ctx, buildField(depths, baseElo), rounds)
	if err != nil {
		logger.Error("arena stopped", slog.Any("error", err))
		os.Exit(1)
	}
	for i, c := range ranked {
		fmt.Fprintf(os.Stdout, "%d. %s %.1f\n", i+1, au.Bold(c.ID), c.Elo)
	}
}

func parseDepths(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	depths := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		depth, err := strconv.Atoi(part)
		if err != nil || depth <= 0 {
			return nil, fmt.Errorf("bad depth %q", part)
		}
		depths = append(depths, depth)
	}
	if len(depths) < 2 {
		return nil, fmt.Errorf("need at least two depths, got %d", len(depths))
	}
	return depths, nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
