package battery

import "github.com/arjun-sk/cellsym/internal/symbolic"

// Domain tags the region of the cell a quantity lives on.
type Domain string

const (
	Negative  Domain = "negative electrode"
	Separator Domain = "separator"
	Positive  Domain = "positive electrode"
	Cell      Domain = "cell"
)

// ElectrodeDomains lists the two reacting domains in canonical order.
func ElectrodeDomains() []Domain { return []Domain{Negative, Positive} }

// ElectrolyteDomains lists the three electrolyte-filled domains in
// canonical order.
func ElectrolyteDomains() []Domain { return []Domain{Negative, Separator, Positive} }

// Submodel is one composable piece of the cell model. Which of the four
// contribution capabilities a variant implements depends on its role;
// the builder discovers them by type assertion, the way a simulator
// probes optional interfaces on a dynamics model.
type Submodel interface {
	// Name identifies the variant for provenance and error messages,
	// e.g. "Fickian diffusion particle (negative electrode)".
	Name() string
}

// VariableContributor publishes derived variables: named quantities
// defined by an expression rather than governed by their own equation.
type VariableContributor interface {
	Submodel
	ContributeVariables(w *Workspace) error
}

// EquationContributor publishes governing equations, differential or
// algebraic, each introducing its unknown variable.
type EquationContributor interface {
	Submodel
	ContributeEquations(w *Workspace) error
}

// BoundaryContributor publishes a left/right boundary condition pair for
// variables whose equations contain spatial operators.
type BoundaryContributor interface {
	Submodel
	ContributeBoundaryConditions(w *Workspace) error
}

// InitialContributor publishes initial conditions, required for every
// differential unknown.
type InitialContributor interface {
	Submodel
	ContributeInitialConditions(w *Workspace) error
}

// Reaction describes one interfacial reaction: the variable name under
// which its current density is published and the parameters governing it.
type Reaction struct {
	CurrentVariable          string
	ExchangeCurrentParameter string
	SurfaceAreaParameter     string
}

// Reactions maps each reacting domain to its reaction descriptor. Built
// once by the builder before any contribution runs and shared read-only.
type Reactions map[Domain]Reaction

// InterfacialCurrent returns the symbolic interfacial current density for
// a domain, or zero for domains with no reaction (the separator).
func (r Reactions) InterfacialCurrent(d Domain) symbolic.Expr {
	rx, ok := r[d]
	if !ok {
		return symbolic.Num(0)
	}
	return symbolic.Var(rx.CurrentVariable)
}
