package builder

import (
	"github.com/arjun-sk/cellsym/internal/battery"
)

// OptionMatrix holds candidate values per aspect. Sets enumerates the
// cartesian product and keeps only combinations that validate, so a
// matrix may freely mix values with conflicting constraints.
type OptionMatrix struct {
	Particle         []battery.ParticleOption
	SurfaceForm      []battery.SurfaceFormOption
	Dimensionality   []int
	Convection       []battery.ConvectionOption
	Thermal          []battery.ThermalOption
	CurrentCollector []battery.CollectorOption
	Porosity         []battery.PorosityOption
}

// FullMatrix covers every supported value of every aspect.
func FullMatrix() OptionMatrix {
	return OptionMatrix{
		Particle:         []battery.ParticleOption{battery.ParticleFickian, battery.ParticleFast},
		SurfaceForm:      []battery.SurfaceFormOption{battery.SurfaceFormNone, battery.SurfaceFormDifferential, battery.SurfaceFormAlgebraic},
		Dimensionality:   []int{0, 1, 2},
		Convection:       []battery.ConvectionOption{battery.ConvectionNone, battery.ConvectionFull},
		Thermal:          []battery.ThermalOption{battery.ThermalIsothermal, battery.ThermalLumped},
		CurrentCollector: []battery.CollectorOption{battery.CollectorUniform, battery.CollectorPotentialPair},
		Porosity:         []battery.PorosityOption{battery.PorosityConstant, battery.PorosityReactionDriven},
	}
}

// Sets returns the validated option sets of the matrix, in enumeration
// order. Combinations rejected by cross-aspect constraints are skipped.
func (m OptionMatrix) Sets() []battery.Options {
	base := battery.DefaultOptions()
	fill := func(opts battery.Options) battery.Options {
		if opts.Particle == "" {
			opts.Particle = base.Particle
		}
		if opts.SurfaceForm == "" {
			opts.SurfaceForm = base.SurfaceForm
		}
		if opts.Convection == "" {
			opts.Convection = base.Convection
		}
		if opts.Thermal == "" {
			opts.Thermal = base.Thermal
		}
		if opts.CurrentCollector == "" {
			opts.CurrentCollector = base.CurrentCollector
		}
		if opts.Porosity == "" {
			opts.Porosity = base.Porosity
		}
		return opts
	}

	// Empty axes fall back to a single zero value so the product still
	// covers the remaining axes; fill substitutes the default.
	particles := m.Particle
	if len(particles) == 0 {
		particles = []battery.ParticleOption{""}
	}
	surfaceForms := m.SurfaceForm
	if len(surfaceForms) == 0 {
		surfaceForms = []battery.SurfaceFormOption{""}
	}
	dims := m.Dimensionality
	if len(dims) == 0 {
		dims = []int{0}
	}
	convections := m.Convection
	if len(convections) == 0 {
		convections = []battery.ConvectionOption{""}
	}
	thermals := m.Thermal
	if len(thermals) == 0 {
		thermals = []battery.ThermalOption{""}
	}
	collectors := m.CurrentCollector
	if len(collectors) == 0 {
		collectors = []battery.CollectorOption{""}
	}
	porosities := m.Porosity
	if len(porosities) == 0 {
		porosities = []battery.PorosityOption{""}
	}

	var sets []battery.Options
	for _, pa := range particles {
		for _, sf := range surfaceForms {
			for _, dim := range dims {
				for _, cv := range convections {
					for _, th := range thermals {
						for _, cc := range collectors {
							for _, po := range porosities {
								opts := fill(battery.Options{
									Particle:         pa,
									SurfaceForm:      sf,
									Dimensionality:   dim,
									Convection:       cv,
									Thermal:          th,
									CurrentCollector: cc,
									Porosity:         po,
								})
								validated, err := opts.Validate()
								if err != nil {
									continue
								}
								sets = append(sets, validated)
							}
						}
					}
				}
			}
		}
	}
	return sets
}
