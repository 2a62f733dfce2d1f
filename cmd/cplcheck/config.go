package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// config selects which scenarios run and where their output goes. It is
// loadable from a TOML file so a fixed scenario suite can be replayed
// across variants.
type config struct {
	// Scenarios lists the scenario names to run. Empty means all.
	Scenarios []string `toml:"scenarios"`

	// TraceOut, when non-empty, receives the serialized lifetime event
	// log after the run.
	TraceOut string `toml:"trace_out"`

	// Color is one of auto, on, off.
	Color string `toml:"color"`
}

func defaultConfig() config {
	return config{Color: "auto"}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	switch cfg.Color {
	case "", "auto":
		cfg.Color = "auto"
	case "on", "off":
	default:
		return cfg, fmt.Errorf("invalid color mode %q (must be auto, on or off)", cfg.Color)
	}
	for _, name := range cfg.Scenarios {
		if _, ok := findScenario(name); !ok {
			return cfg, fmt.Errorf("unknown scenario in config: %s", name)
		}
	}
	return cfg, nil
}
