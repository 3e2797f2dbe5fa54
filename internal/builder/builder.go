// Package builder orchestrates model composition: it resolves validated
// options into submodel variants through static dispatch tables, registers
// them in canonical order, runs their contributions into one workspace,
// checks consistency and freezes the result.
package builder

import (
	"fmt"

	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/params"
	"github.com/arjun-sk/cellsym/internal/submodels"
)

// Canonical role names. Registration order is contribution order; later
// roles may read variables published by earlier ones, never the reverse.
const (
	RoleExternalCircuit = "external circuit"
	RolePorosity        = "porosity"
	RoleTortuosity      = "tortuosity"
	RoleConvection      = "convection"
	RoleNegInterface    = "negative interface"
	RolePosInterface    = "positive interface"
	RoleNegParticle     = "negative particle"
	RolePosParticle     = "positive particle"
	RoleNegElectrode    = "negative electrode"
	RolePosElectrode    = "positive electrode"
	RoleDiffusion       = "electrolyte diffusion"
	RoleConductivity    = "electrolyte conductivity"
	RoleNegConductivity = "negative electrolyte conductivity"
	RoleSepConductivity = "separator electrolyte conductivity"
	RolePosConductivity = "positive electrolyte conductivity"
	RoleThermal         = "thermal"
	RoleCollector       = "current collector"
)

// entry pairs a role with the submodel instance that fills it.
type entry struct {
	role string
	sub  battery.Submodel
}

// constructor instantiates the registry entries for one aspect variant.
type constructor func(p *params.Set, rx battery.Reactions) []entry

// Static dispatch tables, one per aspect. Options validation guarantees
// every value hitting these tables has an entry; a miss means the tables
// and the validator have drifted and is checked at init.

var particleTable = map[battery.ParticleOption]constructor{
	battery.ParticleFickian: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{
			{RoleNegParticle, submodels.NewFickianParticle(battery.Negative, rx)},
			{RolePosParticle, submodels.NewFickianParticle(battery.Positive, rx)},
		}
	},
	battery.ParticleFast: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{
			{RoleNegParticle, submodels.NewFastParticle(battery.Negative, rx)},
			{RolePosParticle, submodels.NewFastParticle(battery.Positive, rx)},
		}
	},
}

var electrodeTable = map[battery.SurfaceFormOption]constructor{
	battery.SurfaceFormNone: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{
			{RoleNegElectrode, submodels.NewOhmFull(battery.Negative, rx)},
			{RolePosElectrode, submodels.NewOhmFull(battery.Positive, rx)},
		}
	},
	battery.SurfaceFormDifferential: surfaceFormElectrodes,
	battery.SurfaceFormAlgebraic:    surfaceFormElectrodes,
}

func surfaceFormElectrodes(p *params.Set, rx battery.Reactions) []entry {
	return []entry{
		{RoleNegElectrode, submodels.NewOhmSurfaceForm(battery.Negative)},
		{RolePosElectrode, submodels.NewOhmSurfaceForm(battery.Positive)},
	}
}

var conductivityTable = map[battery.SurfaceFormOption]constructor{
	battery.SurfaceFormNone: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RoleConductivity, submodels.NewConductivityFull(p, rx)}}
	},
	battery.SurfaceFormDifferential: func(p *params.Set, rx battery.Reactions) []entry {
		return surfaceFormConductivities(battery.Differential, p, rx)
	},
	battery.SurfaceFormAlgebraic: func(p *params.Set, rx battery.Reactions) []entry {
		return surfaceFormConductivities(battery.Algebraic, p, rx)
	},
}

func surfaceFormConductivities(kind battery.EquationKind, p *params.Set, rx battery.Reactions) []entry {
	return []entry{
		{RoleNegConductivity, submodels.NewSurfaceFormConductivity(battery.Negative, kind, p, rx)},
		{RoleSepConductivity, submodels.NewSurfaceFormConductivity(battery.Separator, kind, p, rx)},
		{RolePosConductivity, submodels.NewSurfaceFormConductivity(battery.Positive, kind, p, rx)},
	}
}

var porosityTable = map[battery.PorosityOption]constructor{
	battery.PorosityConstant: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RolePorosity, submodels.NewConstantPorosity()}}
	},
	battery.PorosityReactionDriven: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RolePorosity, submodels.NewReactionDrivenPorosity(rx)}}
	},
}

var convectionTable = map[battery.ConvectionOption]constructor{
	battery.ConvectionNone: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RoleConvection, submodels.NewNoConvection()}}
	},
	battery.ConvectionFull: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RoleConvection, submodels.NewFullConvection(rx)}}
	},
}

var thermalTable = map[battery.ThermalOption]constructor{
	battery.ThermalIsothermal: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RoleThermal, submodels.NewIsothermal()}}
	},
	battery.ThermalLumped: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RoleThermal, submodels.NewLumpedThermal(rx)}}
	},
}

var collectorTable = map[battery.CollectorOption]constructor{
	battery.CollectorUniform: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RoleCollector, submodels.NewUniformCollector()}}
	},
	battery.CollectorPotentialPair: func(p *params.Set, rx battery.Reactions) []entry {
		return []entry{{RoleCollector, submodels.NewPotentialPairCollector()}}
	},
}

// init checks the dispatch tables cover every legal variant, so drift
// between the validator and the tables fails at startup, not mid-build.
func init() {
	checks := []struct {
		aspect string
		ok     bool
	}{
		{"particle", hasAll(particleTable, battery.ParticleFickian, battery.ParticleFast)},
		{"electrode", hasAll(electrodeTable, battery.SurfaceFormNone, battery.SurfaceFormDifferential, battery.SurfaceFormAlgebraic)},
		{"conductivity", hasAll(conductivityTable, battery.SurfaceFormNone, battery.SurfaceFormDifferential, battery.SurfaceFormAlgebraic)},
		{"porosity", hasAll(porosityTable, battery.PorosityConstant, battery.PorosityReactionDriven)},
		{"convection", hasAll(convectionTable, battery.ConvectionNone, battery.ConvectionFull)},
		{"thermal", hasAll(thermalTable, battery.ThermalIsothermal, battery.ThermalLumped)},
		{"collector", hasAll(collectorTable, battery.CollectorUniform, battery.CollectorPotentialPair)},
	}
	for _, c := range checks {
		if !c.ok {
			panic(fmt.Sprintf("builder: dispatch table for %q does not cover every legal variant", c.aspect))
		}
	}
}

func hasAll[K comparable](table map[K]constructor, keys ...K) bool {
	for _, k := range keys {
		if _, ok := table[k]; !ok {
			return false
		}
	}
	return true
}

// ReactionsFor computes the shared read-only reactions map handed to
// every submodel that needs interfacial-current information.
func ReactionsFor() battery.Reactions {
	rx := make(battery.Reactions, 2)
	for _, d := range battery.ElectrodeDomains() {
		rx[d] = submodels.ReactionFor(d)
	}
	return rx
}

// Build validates opts, populates a registry in canonical order and
// composes the submodel contributions into one frozen model.
func Build(opts battery.Options, p *params.Set) (*battery.Model, error) {
	return BuildNamed("lithium-ion cell", opts, p)
}

// BuildNamed is Build with a caller-chosen model name.
func BuildNamed(name string, opts battery.Options, p *params.Set) (*battery.Model, error) {
	opts, err := opts.Validate()
	if err != nil {
		return nil, err
	}

	rx := ReactionsFor()
	reg := battery.NewRegistry()
	if err := populate(reg, opts, p, rx); err != nil {
		return nil, err
	}
	return Compose(reg, opts, name)
}

// populate fills the registry in the canonical contribution order.
func populate(reg *battery.Registry, opts battery.Options, p *params.Set, rx battery.Reactions) error {
	pick := func(aspect string, c constructor, ok bool) []entry {
		if !ok {
			// Options validation excludes every value that could get
			// here; reaching it is dispatch-table drift.
			panic(fmt.Sprintf("builder: no constructor registered for aspect %q", aspect))
		}
		return c(p, rx)
	}

	var ordered []entry
	ordered = append(ordered, entry{RoleExternalCircuit, submodels.NewCurrentControl()})

	c, ok := porosityTable[opts.Porosity]
	ordered = append(ordered, pick("porosity", c, ok)...)

	ordered = append(ordered, entry{RoleTortuosity, submodels.NewBruggemanTortuosity()})

	c, ok = convectionTable[opts.Convection]
	ordered = append(ordered, pick("convection", c, ok)...)

	ordered = append(ordered,
		entry{RoleNegInterface, submodels.NewButlerVolmer(battery.Negative, rx)},
		entry{RolePosInterface, submodels.NewButlerVolmer(battery.Positive, rx)},
	)

	c, ok = particleTable[opts.Particle]
	ordered = append(ordered, pick("particle", c, ok)...)

	c, ok = electrodeTable[opts.SurfaceForm]
	ordered = append(ordered, pick("electrode", c, ok)...)

	ordered = append(ordered, entry{RoleDiffusion, submodels.NewDiffusionFull(p, rx)})

	c, ok = conductivityTable[opts.SurfaceForm]
	ordered = append(ordered, pick("conductivity", c, ok)...)

	c, ok = thermalTable[opts.Thermal]
	ordered = append(ordered, pick("thermal", c, ok)...)

	c, ok = collectorTable[opts.CurrentCollector]
	ordered = append(ordered, pick("collector", c, ok)...)

	for _, e := range ordered {
		if err := reg.Register(e.role, e.sub); err != nil {
			return err
		}
	}
	return nil
}

// Compose runs every registered submodel's contributions, in registry
// order, into a fresh workspace, then verifies and freezes it. It is
// exported separately from Build so callers assembling their own registry
// (custom variants, reordered entries) reuse the same composition path.
func Compose(reg *battery.Registry, opts battery.Options, name string) (*battery.Model, error) {
	w := battery.NewWorkspace()

	for _, role := range reg.Roles() {
		sub, _ := reg.Get(role)
		w.SetRole(role)

		if c, ok := sub.(battery.VariableContributor); ok {
			if err := c.ContributeVariables(w); err != nil {
				return nil, err
			}
		}
		if c, ok := sub.(battery.EquationContributor); ok {
			if err := c.ContributeEquations(w); err != nil {
				return nil, err
			}
		}
		if c, ok := sub.(battery.BoundaryContributor); ok {
			if err := c.ContributeBoundaryConditions(w); err != nil {
				return nil, err
			}
		}
		if c, ok := sub.(battery.InitialContributor); ok {
			if err := c.ContributeInitialConditions(w); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Verify(); err != nil {
		return nil, err
	}
	return w.Freeze(opts, name), nil
}
