package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Frontend selects how the host simulator shows the matrix.
type Frontend string

const (
	FrontendHeadless Frontend = "headless"
	FrontendTerminal Frontend = "terminal"
	FrontendWindow   Frontend = "window"
)

// Step is one scripted tick of simulated hardware.
type Step struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
	Z int32 `yaml:"z"`

	// Ready defaults to true; false simulates a tick without a new accelerometer sample.
	Ready *bool `yaml:"ready"`
	A     bool  `yaml:"a"`
	B     bool  `yaml:"b"`
	// Fault makes both the button and accelerometer reads fail for this tick.
	Fault bool  `yaml:"fault"`
}

// IsReady reports whether the step carries a fresh sample.
func (s Step) IsReady() bool {
	return s.Ready == nil || *s.Ready
}

// Config is the top-level structure of the simulator YAML file.
type Config struct {
	HoldMS      int      `yaml:"hold_ms"`
	InitialMode string   `yaml:"initial_mode"`
	Splash      bool     `yaml:"splash"`
	Frontend    Frontend `yaml:"frontend"`

	// Ticks stops the headless runner after this many ticks; 0 runs the whole script once.
	Ticks    uint64 `yaml:"ticks"`
	Snapshot string `yaml:"snapshot"`
	Verbose  bool   `yaml:"verbose"`
	Script   []Step `yaml:"script"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		HoldMS:      200,
		InitialMode: "coarse",
		Splash:      true,
		Frontend:    FrontendTerminal,
	}
}

// Hold returns the per-frame display time.
func (c *Config) Hold() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// Validate checks the values a YAML file may have gotten wrong.
func (c *Config) Validate() error {
	if c.HoldMS <= 0 {
		return fmt.Errorf("hold_ms must be positive, got %d", c.HoldMS)
	}
	switch c.InitialMode {
	case "coarse", "fine":
	default:
		return fmt.Errorf("initial_mode must be coarse or fine, got %q", c.InitialMode)
	}
	switch c.Frontend {
	case FrontendHeadless, FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Frontend == FrontendHeadless && len(c.Script) == 0 && c.Ticks == 0 {
		return fmt.Errorf("headless frontend needs a script or a tick limit")
	}
	return nil
}

// Load reads and parses a simulator config, filling unset fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
