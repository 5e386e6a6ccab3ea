package config

import "sort"

var Presets = map[string]*Config{
	"classic":  {Names: "pobi,woni,jun", Rounds: 5, Threshold: DefaultThreshold},
	"duel":     {Names: "crong,honux", Rounds: 10, Threshold: DefaultThreshold},
	"marathon": {Names: "pobi,woni,jun,crong,honux", Rounds: 50, Threshold: DefaultThreshold},
	"sprint":   {Names: "pobi,woni,jun", Rounds: 1, Threshold: DefaultThreshold},
	"sluggish": {Names: "pobi,woni,jun", Rounds: 20, Threshold: 7},
}

// GetPreset returns a copy of the named preset, or nil if there is none.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
