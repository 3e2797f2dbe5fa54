// Package submodels holds the submodel variants for every aspect of the
// cell model. Variants share no state and never reference each other;
// they couple only through named variables in the build workspace.
package submodels

import (
	"strings"

	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// title renders a domain as the leading segment of a variable name,
// e.g. "Negative electrode porosity".
func title(d battery.Domain) string {
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// zeroFluxPair is the homogeneous Neumann pair used wherever a quantity
// has no flux through either boundary.
func zeroFluxPair() battery.BoundaryPair {
	zero := battery.BoundaryCondition{Kind: battery.Neumann, Value: symbolic.Num(0)}
	return battery.BoundaryPair{Left: zero, Right: zero}
}

// Common variable names shared across submodels.
const (
	TotalCurrentVar     = "Total current density"
	ElectrolyteConcVar  = "Electrolyte concentration"
	ElectrolytePotVar   = "Electrolyte potential"
	TemperatureVar      = "Cell temperature"
	VelocityVar         = "Volume-averaged velocity"
	CollectorCurrentVar = "Current collector current density"
)

// InterfacialCurrentVar names the interfacial current density published
// for a reacting domain. The builder uses it to construct the reactions
// map before any submodel runs.
func InterfacialCurrentVar(d battery.Domain) string {
	return title(d) + " interfacial current density"
}

// ReactionFor describes the interfacial reaction of a reacting domain.
func ReactionFor(d battery.Domain) battery.Reaction {
	return battery.Reaction{
		CurrentVariable:          InterfacialCurrentVar(d),
		ExchangeCurrentParameter: title(d) + " exchange-current density",
		SurfaceAreaParameter:     title(d) + " surface area density",
	}
}

func porosityVar(d battery.Domain) string   { return title(d) + " porosity" }
func tortuosityVar(d battery.Domain) string { return title(d) + " electrolyte tortuosity" }
func potentialVar(d battery.Domain) string  { return title(d) + " potential" }
func concentrationVar(d battery.Domain) string {
	if d == battery.Negative {
		return "Negative particle concentration"
	}
	return "Positive particle concentration"
}
func overpotentialVar(d battery.Domain) string { return title(d) + " overpotential" }
func surfacePotentialVar(d battery.Domain) string {
	return title(d) + " surface potential difference"
}

// side returns "Negative" or "Positive" for particle parameter names.
func side(d battery.Domain) string {
	if d == battery.Negative {
		return "Negative"
	}
	return "Positive"
}
