package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"war/internal/domain"
)

// DefaultPath is where InitModule looks for the game configuration.
const DefaultPath = "data/war_config.json"

// GameConfig selects how turns are resolved.
type GameConfig struct {
	Ruleset string `json:"ruleset"`
	// WarDepth overrides the ruleset's war depth when set.
	WarDepth int `json:"war_depth,omitempty"`
	// MADOnFaceUpTie overrides the ruleset's face-up tie handling when set.
	MADOnFaceUpTie *bool `json:"mad_on_face_up_tie,omitempty"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := ParseGameConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// ParseGameConfig decodes and validates a JSON game configuration.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if _, err := c.Rules(); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetGameConfig returns the global game configuration, nil when none was loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// Rules resolves the named ruleset and applies any overrides.
func (c *GameConfig) Rules() (domain.Rules, error) {
	rules, err := domain.RulesetByName(c.Ruleset)
	if err != nil {
		return domain.Rules{}, err
	}
	if c.WarDepth != 0 {
		rules.WarDepth = c.WarDepth
	}
	if c.MADOnFaceUpTie != nil {
		rules.MADOnFaceUpTie = *c.MADOnFaceUpTie
	}
	if err := rules.Validate(); err != nil {
		return domain.Rules{}, err
	}
	return rules, nil
}

// ResolveRules picks the rules for a request. The first non-empty ruleset name
// replaces the configured ruleset, but the loaded war_depth and
// mad_on_face_up_tie overrides still apply to it. Without a name the loaded
// configuration applies, then StandardRules.
func ResolveRules(names ...string) (domain.Rules, error) {
	selected := GameConfig{}
	if cfg != nil {
		selected = *cfg
	}
	for _, name := range names {
		if name != "" {
			selected.Ruleset = name
			break
		}
	}
	return selected.Rules()
}
