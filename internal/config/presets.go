package config

import "sort"

// Presets are named spring tunings. Only the spring section differs;
// everything else inherits the defaults.
var Presets = map[string]*Config{
	"rope": {
		Spring: SpringConfig{Stiffness: 0.15, Damping: 0.85},
	},
	"stiff": {
		Spring: SpringConfig{Stiffness: 0.4, Damping: 0.7},
	},
	"floaty": {
		Spring: SpringConfig{Stiffness: 0.05, Damping: 0.92},
	},
	"snappy": {
		Spring: SpringConfig{Stiffness: 0.3, Damping: 0.8},
	},
	"molasses": {
		Spring: SpringConfig{Stiffness: 0.02, Damping: 0.95},
	},
}

// GetPreset returns a full config for a named preset, or nil when the
// name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Spring = p.Spring
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
