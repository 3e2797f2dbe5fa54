package config

import (
	"sort"

	"github.com/arjun-sk/cellsym/internal/battery"
)

var Presets = map[string]*Config{
	"dfn": {
		Name:             "Doyle-Fuller-Newman cell",
		Particle:         string(battery.ParticleFickian),
		SurfaceForm:      string(battery.SurfaceFormNone),
		Convection:       string(battery.ConvectionNone),
		Thermal:          string(battery.ThermalIsothermal),
		CurrentCollector: string(battery.CollectorUniform),
		Porosity:         string(battery.PorosityConstant),
	},
	"dfn-surface": {
		Name:             "Doyle-Fuller-Newman cell, surface potential form",
		Particle:         string(battery.ParticleFickian),
		SurfaceForm:      string(battery.SurfaceFormDifferential),
		Convection:       string(battery.ConvectionNone),
		Thermal:          string(battery.ThermalIsothermal),
		CurrentCollector: string(battery.CollectorUniform),
		Porosity:         string(battery.PorosityConstant),
	},
	"fast-thermal": {
		Name:             "fast-diffusion cell with lumped thermal",
		Particle:         string(battery.ParticleFast),
		SurfaceForm:      string(battery.SurfaceFormNone),
		Convection:       string(battery.ConvectionNone),
		Thermal:          string(battery.ThermalLumped),
		CurrentCollector: string(battery.CollectorUniform),
		Porosity:         string(battery.PorosityConstant),
	},
	"pouch-1d": {
		Name:             "1D pouch cell with potential-pair collectors",
		Particle:         string(battery.ParticleFickian),
		SurfaceForm:      string(battery.SurfaceFormNone),
		Dimensionality:   1,
		Convection:       string(battery.ConvectionNone),
		Thermal:          string(battery.ThermalLumped),
		CurrentCollector: string(battery.CollectorPotentialPair),
		Porosity:         string(battery.PorosityConstant),
	},
}

// GetPreset returns a copy of the named preset, so callers can override
// fields without touching the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	if cfg.ParameterOverrides != nil {
		out.ParameterOverrides = make(map[string]float64, len(cfg.ParameterOverrides))
		for k, v := range cfg.ParameterOverrides {
			out.ParameterOverrides[k] = v
		}
	}
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
