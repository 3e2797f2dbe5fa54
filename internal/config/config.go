package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arjun-sk/cellsym/internal/battery"
)

// Config is the yaml-facing build configuration: a model name, the option
// strings for every aspect and optional parameter overrides. Option
// values are checked by battery.Options.Validate, not here.
type Config struct {
	Name               string             `yaml:"name"`
	Particle           string             `yaml:"particle"`
	SurfaceForm        string             `yaml:"surface_form"`
	Dimensionality     int                `yaml:"dimensionality"`
	Convection         string             `yaml:"convection"`
	Thermal            string             `yaml:"thermal"`
	CurrentCollector   string             `yaml:"current_collector"`
	Porosity           string             `yaml:"porosity"`
	ParameterOverrides map[string]float64 `yaml:"parameters"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:             "lithium-ion cell",
		Particle:         string(battery.ParticleFickian),
		SurfaceForm:      string(battery.SurfaceFormNone),
		Dimensionality:   0,
		Convection:       string(battery.ConvectionNone),
		Thermal:          string(battery.ThermalIsothermal),
		CurrentCollector: string(battery.CollectorUniform),
		Porosity:         string(battery.PorosityConstant),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the loose yaml strings into validated typed options.
func (c *Config) Options() (battery.Options, error) {
	return battery.Options{
		Particle:         battery.ParticleOption(c.Particle),
		SurfaceForm:      battery.SurfaceFormOption(c.SurfaceForm),
		Dimensionality:   c.Dimensionality,
		Convection:       battery.ConvectionOption(c.Convection),
		Thermal:          battery.ThermalOption(c.Thermal),
		CurrentCollector: battery.CollectorOption(c.CurrentCollector),
		Porosity:         battery.PorosityOption(c.Porosity),
	}.Validate()
}
