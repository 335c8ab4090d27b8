package main

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TheKrainBow/connect4/engine"
)

var dockerCacheDir = "/cache_logs"

type configSnapshot struct {
	Version int
	Config  engine.Config
}

const configSnapshotVersion = 1

// loadConfig returns the persisted config, or ok=false when there is none or
// it cannot be used.
func loadConfig(path string) (engine.Config, bool, error) {
	if path == "" {
		return engine.Config{}, false, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return engine.Config{}, false, nil
		}
		return engine.Config{}, false, fmt.Errorf("open config snapshot %s: %w", path, err)
	}
	defer file.Close()

	var snapshot configSnapshot
	if err := gob.NewDecoder(file).Decode(&snapshot); err != nil {
		return engine.Config{}, false, fmt.Errorf("decode config snapshot %s: %w", path, err)
	}
	if snapshot.Version != configSnapshotVersion {
		return engine.Config{}, false, fmt.Errorf("config snapshot %s has version %d, want %d", path, snapshot.Version, configSnapshotVersion)
	}
	if err := snapshot.Config.Validate(); err != nil {
		return engine.Config{}, false, fmt.Errorf("config snapshot %s: %w", path, err)
	}
	return snapshot.Config, true, nil
}

func saveConfig(path string, config engine.Config) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create config snapshot %s: %w", tmp, err)
	}
	if err := gob.NewEncoder(file).Encode(configSnapshot{Version: configSnapshotVersion, Config: config}); err != nil {
		file.Close()
		return fmt.Errorf("encode config snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close config snapshot: %w", err)
	}
	return os.Rename(tmp, path)
}

func resolveConfigPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if stat, err := os.Stat(dockerCacheDir); err == nil && stat.IsDir() {
		return filepath.Join(dockerCacheDir, path)
	}
	return path
}
