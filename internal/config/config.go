// Package config provides engine tuning configuration, stored as TOML
// and loaded with silent fallback to defaults when the file is
// missing or malformed.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default tuning values, used whenever a config file is absent,
// unreadable, or leaves a field unset.
const (
	DefaultMaxDepth         = 11
	DefaultMaxSearchSeconds = 5
	DefaultWorkerCount      = 0 // 0 means auto-detect via runtime.NumCPU()
	DefaultTableCapacity    = 100_000
	DefaultMinDrawScore     = -500
)

// EngineConfig holds engine tuning knobs: search depth and time
// budget, worker parallelism, transposition table size, and the
// score threshold at or below which an offered draw is worth accepting.
type EngineConfig struct {
	MaxDepth         int
	MaxSearchSeconds int
	WorkerCount      int
	TableCapacity    int
	MinDrawScore     int
}

// DefaultEngineConfig returns the tuning knobs a fresh install runs
// with.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxDepth:         DefaultMaxDepth,
		MaxSearchSeconds: DefaultMaxSearchSeconds,
		WorkerCount:      DefaultWorkerCount,
		TableCapacity:    DefaultTableCapacity,
		MinDrawScore:     DefaultMinDrawScore,
	}
}

// engineConfigFile is the on-disk TOML shape.
type engineConfigFile struct {
	Engine struct {
		MaxDepth         int `toml:"max_depth"`
		MaxSearchSeconds int `toml:"max_search_seconds"`
		WorkerCount      int `toml:"worker_count"`
		TableCapacity    int `toml:"table_capacity"`
		MinDrawScore     int `toml:"min_draw_score"`
	} `toml:"engine"`
}

// LoadEngineConfig reads path as a TOML engine config. It never
// returns an error: a missing file, a parse failure, or a zero-valued
// field each silently fall back to the matching default, the same
// policy the teacher's own config loader follows.
func LoadEngineConfig(path string) EngineConfig {
	defaults := DefaultEngineConfig()

	if _, err := os.Stat(path); err != nil {
		return defaults
	}

	var cf engineConfigFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return defaults
	}

	cfg := defaults
	if cf.Engine.MaxDepth != 0 {
		cfg.MaxDepth = cf.Engine.MaxDepth
	}
	if cf.Engine.MaxSearchSeconds != 0 {
		cfg.MaxSearchSeconds = cf.Engine.MaxSearchSeconds
	}
	if cf.Engine.WorkerCount != 0 {
		cfg.WorkerCount = cf.Engine.WorkerCount
	}
	if cf.Engine.TableCapacity != 0 {
		cfg.TableCapacity = cf.Engine.TableCapacity
	}
	if cf.Engine.MinDrawScore != 0 {
		cfg.MinDrawScore = cf.Engine.MinDrawScore
	}
	return cfg
}

// SaveEngineConfig writes cfg to path as TOML. It does not create
// missing parent directories; writing into one returns an error.
func SaveEngineConfig(path string, cfg EngineConfig) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer file.Close()

	var cf engineConfigFile
	cf.Engine.MaxDepth = cfg.MaxDepth
	cf.Engine.MaxSearchSeconds = cfg.MaxSearchSeconds
	cf.Engine.WorkerCount = cfg.WorkerCount
	cf.Engine.TableCapacity = cfg.TableCapacity
	cf.Engine.MinDrawScore = cfg.MinDrawScore

	if err := toml.NewEncoder(file).Encode(cf); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}
