package battery

import "fmt"

// Option enumerations. Every aspect of the cell model is a closed set of
// variants; anything outside the set is rejected by Validate before any
// submodel is instantiated.

type ParticleOption string

const (
	ParticleFickian ParticleOption = "Fickian diffusion"
	ParticleFast    ParticleOption = "fast diffusion"
)

// SurfaceFormOption selects how electrolyte conductivity is expressed:
// folded into one full equation ("false"), or as an explicit per-domain
// surface potential difference equation, differential or algebraic.
type SurfaceFormOption string

const (
	SurfaceFormNone         SurfaceFormOption = "false"
	SurfaceFormDifferential SurfaceFormOption = "differential"
	SurfaceFormAlgebraic    SurfaceFormOption = "algebraic"
)

type ConvectionOption string

const (
	ConvectionNone ConvectionOption = "none"
	ConvectionFull ConvectionOption = "full"
)

type ThermalOption string

const (
	ThermalIsothermal ThermalOption = "isothermal"
	ThermalLumped     ThermalOption = "lumped"
)

type CollectorOption string

const (
	CollectorUniform       CollectorOption = "uniform"
	CollectorPotentialPair CollectorOption = "potential pair"
)

type PorosityOption string

const (
	PorosityConstant       PorosityOption = "constant"
	PorosityReactionDriven PorosityOption = "reaction driven"
)

// Options selects one variant per aspect. The zero value of each field
// means "use the default"; Validate fills defaults in and checks the
// cross-key constraints.
type Options struct {
	Particle         ParticleOption
	SurfaceForm      SurfaceFormOption
	Dimensionality   int
	Convection       ConvectionOption
	Thermal          ThermalOption
	CurrentCollector CollectorOption
	Porosity         PorosityOption

	validated bool
}

// DefaultOptions returns the validated default configuration: an
// isothermal zero-dimensional cell with Fickian particles.
func DefaultOptions() Options {
	o, err := Options{}.Validate()
	if err != nil {
		panic(err) // defaults are statically legal
	}
	return o
}

// Validated reports whether o passed Validate.
func (o Options) Validated() bool { return o.validated }

// Validate fills in defaults, checks every field against its legal set
// and checks cross-key constraints. Validating already-validated options
// returns them unchanged.
func (o Options) Validate() (Options, error) {
	if o.validated {
		return o, nil
	}

	if o.Particle == "" {
		o.Particle = ParticleFickian
	}
	if o.SurfaceForm == "" {
		o.SurfaceForm = SurfaceFormNone
	}
	if o.Convection == "" {
		o.Convection = ConvectionNone
	}
	if o.Thermal == "" {
		o.Thermal = ThermalIsothermal
	}
	if o.CurrentCollector == "" {
		o.CurrentCollector = CollectorUniform
	}
	if o.Porosity == "" {
		o.Porosity = PorosityConstant
	}

	switch o.Particle {
	case ParticleFickian, ParticleFast:
	default:
		return Options{}, o.badValue("particle", string(o.Particle))
	}
	switch o.SurfaceForm {
	case SurfaceFormNone, SurfaceFormDifferential, SurfaceFormAlgebraic:
	default:
		return Options{}, o.badValue("surface form", string(o.SurfaceForm))
	}
	if o.Dimensionality < 0 || o.Dimensionality > 2 {
		return Options{}, o.badValue("dimensionality", fmt.Sprintf("%d", o.Dimensionality))
	}
	switch o.Convection {
	case ConvectionNone, ConvectionFull:
	default:
		return Options{}, o.badValue("convection", string(o.Convection))
	}
	switch o.Thermal {
	case ThermalIsothermal, ThermalLumped:
	default:
		return Options{}, o.badValue("thermal", string(o.Thermal))
	}
	switch o.CurrentCollector {
	case CollectorUniform, CollectorPotentialPair:
	default:
		return Options{}, o.badValue("current collector", string(o.CurrentCollector))
	}
	switch o.Porosity {
	case PorosityConstant, PorosityReactionDriven:
	default:
		return Options{}, o.badValue("porosity", string(o.Porosity))
	}

	// Cross-key constraints. A potential-pair collector is the only model
	// of in-plane current flow, so it and dimensionality >= 1 imply each
	// other; transverse convection is only formulated for 0D cells.
	if o.CurrentCollector == CollectorPotentialPair && o.Dimensionality == 0 {
		return Options{}, &ConfigurationError{
			Key: "current collector", Value: string(o.CurrentCollector),
			ConflictsWith: "dimensionality", Wrapped: ErrOptionConflict,
		}
	}
	if o.Dimensionality >= 1 && o.CurrentCollector != CollectorPotentialPair {
		return Options{}, &ConfigurationError{
			Key: "dimensionality", Value: fmt.Sprintf("%d", o.Dimensionality),
			ConflictsWith: "current collector", Wrapped: ErrOptionConflict,
		}
	}
	if o.Convection == ConvectionFull && o.Dimensionality != 0 {
		return Options{}, &ConfigurationError{
			Key: "convection", Value: string(o.Convection),
			ConflictsWith: "dimensionality", Wrapped: ErrOptionConflict,
		}
	}

	o.validated = true
	return o, nil
}

func (o Options) badValue(key, value string) error {
	return &ConfigurationError{Key: key, Value: value, Wrapped: ErrInvalidOption}
}
