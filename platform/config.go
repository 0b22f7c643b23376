package platform

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the emulator configuration: embedded defaults, overridden by an
// on-disk config.yaml next to the binary, overridden again by environment
// variables.
type Config struct {
	Shape               string `yaml:"shape" env:"WATCHFACES_SHAPE"`
	Color               bool   `yaml:"color" env:"WATCHFACES_COLOR"`
	Face                string `yaml:"face" env:"WATCHFACES_FACE"`
	Zoom                int    `yaml:"zoom" env:"WATCHFACES_ZOOM"`
	TickMillis          int    `yaml:"tick_ms" env:"WATCHFACES_TICK_MS"`
	LowPowerTickMillis  int    `yaml:"low_power_tick_ms" env:"WATCHFACES_LOW_POWER_TICK_MS"`
	LowBatteryThreshold int    `yaml:"low_battery_threshold" env:"WATCHFACES_LOW_BATTERY_THRESHOLD"`
	Audio               bool   `yaml:"audio" env:"WATCHFACES_AUDIO"`
	DataDir             string `yaml:"data_dir" env:"WATCHFACES_DATA_DIR"`
}

const configFile = "config.yaml"

// LoadConfig builds the effective configuration. A missing disk file is the
// normal case, not an error; a malformed one is reported so the user's
// edits don't vanish silently.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfig, &cfg); err != nil {
		return Config{}, fmt.Errorf("platform: embedded config: %w", err)
	}

	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("platform: parse %s: %w", configFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("platform: env overrides: %w", err)
	}
	return cfg, nil
}

// ParseConfig decodes a yaml document into a Config. Used by the hot-reload
// path, which starts from the current config rather than the defaults.
func ParseConfig(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("platform: parse config: %w", err)
	}
	return cfg, nil
}
