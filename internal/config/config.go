package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/timesplit/internal/duration"
	"github.com/llehouerou/timesplit/internal/partition"
)

const appName = "timesplit"

// keyDelim separates nested config keys.
const keyDelim = "."

// Defaults applied when a key is absent.
const (
	DefaultTotal       = "8h"
	DefaultMaxDistance = 2.0 // terminal cells
)

type Config struct {
	Total       string             `koanf:"total"`        // e.g. "7h30m"
	Items       []Item             `koanf:"items"`        // ordered items to split the total among
	Shares      map[string]float64 `koanf:"shares"`       // optional initial shares by item id
	MinShare    *float64           `koanf:"min_share"`    // (0,1), default 0.05
	Push        *bool              `koanf:"push"`         // cascade separators (default: true)
	MaxDistance float64            `koanf:"max_distance"` // grab distance in cells (default: 2)

	LogFile  string `koanf:"log_file"`  // empty disables logging
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error"
}

// Item is one configured entry of the split.
type Item struct {
	Key  string `koanf:"id"`
	Name string `koanf:"name"`
}

// ID returns the item's unique key.
func (i Item) ID() string { return i.Key }

// DisplayName returns the label, falling back to the key.
func (i Item) DisplayName() string {
	if i.Name == "" {
		return i.Key
	}
	return i.Name
}

var defaultItems = []Item{
	{Key: "focus", Name: "Focus"},
	{Key: "meetings", Name: "Meetings"},
	{Key: "admin", Name: "Admin"},
}

// Validation errors.
var (
	ErrEmptyItemID     = errors.New("item id is empty")
	ErrDuplicateItemID = errors.New("duplicate item id")
	ErrDottedItemID    = errors.New("item id contains '.'")
	ErrMinShareRange   = errors.New("min_share must be in (0,1)")
)

// Load reads config files and returns the merged configuration.
// An explicit path replaces the default search and must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(keyDelim)

	if path != "" {
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	} else {
		// Try config files in order of priority (last wins)
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("load %s: %w", p, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/timesplit/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := c.TotalDuration(); err != nil {
		return err
	}
	if c.MinShare != nil && (*c.MinShare <= 0 || *c.MinShare >= 1) {
		return fmt.Errorf("%w: got %v", ErrMinShareRange, *c.MinShare)
	}
	seen := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		if it.Key == "" {
			return fmt.Errorf("items[%d]: %w", i, ErrEmptyItemID)
		}
		// Dots would split the id when it is used as a [shares] key.
		if strings.Contains(it.Key, keyDelim) {
			return fmt.Errorf("items[%d]: %w: %q", i, ErrDottedItemID, it.Key)
		}
		if seen[it.Key] {
			return fmt.Errorf("items[%d]: %w %q", i, ErrDuplicateItemID, it.Key)
		}
		seen[it.Key] = true
	}
	return nil
}

// TotalDuration parses the configured total, defaulting to DefaultTotal.
func (c *Config) TotalDuration() (time.Duration, error) {
	if c.Total == "" {
		return duration.ParseTotal(DefaultTotal)
	}
	return duration.ParseTotal(c.Total)
}

// GetItems returns the configured items, or the default set when none are.
func (c *Config) GetItems() []Item {
	if len(c.Items) == 0 {
		return append([]Item(nil), defaultItems...)
	}
	return c.Items
}

// InitialShares returns the configured shares normalized over items.
// Without configured shares every item starts equal.
func (c *Config) InitialShares(items []Item) partition.ShareMap {
	return partition.Normalize(items, c.Shares)
}

// GetConstraints returns the partition constraints with defaults applied.
func (c *Config) GetConstraints() partition.Constraints {
	cons := partition.DefaultConstraints()
	if c.MinShare != nil {
		cons.MinShare = *c.MinShare
	}
	if c.Push != nil {
		cons.EnablePush = *c.Push
	}
	return cons
}

// GetMaxDistance returns the separator grab distance with defaults applied.
func (c *Config) GetMaxDistance() float64 {
	if c.MaxDistance <= 0 {
		return DefaultMaxDistance
	}
	return c.MaxDistance
}
