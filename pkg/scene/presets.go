package scene

import (
	"fmt"
	"sort"
	"strings"
)

const builtinGroup = "Built-in Rigs"

// Preset is a rig compiled into the binary
type Preset struct {
	ID  string
	New func() *Rig
}

var presets = []Preset{
	{ID: "cornell", New: NewCornellRig},
	{ID: "studio", New: NewStudioRig},
}

// Presets returns the built-in rigs sorted by id
func Presets() []Preset {
	out := append([]Preset(nil), presets...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PresetRig creates a fresh copy of the named built-in rig
func PresetRig(id string) (*Rig, error) {
	for _, p := range presets {
		if strings.EqualFold(p.ID, id) {
			return p.New(), nil
		}
	}
	ids := make([]string, len(presets))
	for i, p := range presets {
		ids[i] = p.ID
	}
	return nil, fmt.Errorf("unknown preset %q (have %s)", id, strings.Join(ids, ", "))
}

func f64(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func vec(x, y, z float64) []float64 { return []float64{x, y, z} }
