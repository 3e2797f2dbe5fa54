package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// OhmFull solves full Ohm's law for one electrode's solid potential, with
// the interfacial reaction as a distributed sink.
type OhmFull struct {
	domain    battery.Domain
	reactions battery.Reactions
}

func NewOhmFull(d battery.Domain, rx battery.Reactions) *OhmFull {
	return &OhmFull{domain: d, reactions: rx}
}

func (s *OhmFull) Name() string {
	return "full Ohm's law electrode (" + string(s.domain) + ")"
}

func (s *OhmFull) conductivity() symbolic.Expr {
	return symbolic.Param(title(s.domain) + " conductivity")
}

func (s *OhmFull) ContributeEquations(w *battery.Workspace) error {
	d := s.domain
	// 0 = div(sigma grad phi_s) - a j
	residual := symbolic.Sub(
		symbolic.Divergence(symbolic.Mul(s.conductivity(), symbolic.Grad(symbolic.Var(potentialVar(d))))),
		symbolic.Mul(symbolic.Param(s.reactions[d].SurfaceAreaParameter), s.reactions.InterfacialCurrent(d)),
	)
	return w.AddEquation(potentialVar(d), residual, battery.Algebraic)
}

func (s *OhmFull) ContributeBoundaryConditions(w *battery.Workspace) error {
	zeroFlux := battery.BoundaryCondition{Kind: battery.Neumann, Value: symbolic.Num(0)}

	if s.domain == battery.Negative {
		// The negative collector grounds the cell; no current crosses
		// into the separator.
		return w.AddBoundaryConditions(potentialVar(s.domain), battery.BoundaryPair{
			Left:  battery.BoundaryCondition{Kind: battery.Dirichlet, Value: symbolic.Num(0)},
			Right: zeroFlux,
		})
	}

	// The applied current leaves through the positive collector.
	appliedFlux := symbolic.Neg(symbolic.Div(symbolic.Var(TotalCurrentVar), s.conductivity()))
	return w.AddBoundaryConditions(potentialVar(s.domain), battery.BoundaryPair{
		Left:  zeroFlux,
		Right: battery.BoundaryCondition{Kind: battery.Neumann, Value: appliedFlux},
	})
}

// OhmSurfaceForm reconstructs the solid potential from the surface
// potential difference published by the surface-form conductivity
// submodels; it contributes no equation of its own.
type OhmSurfaceForm struct {
	domain battery.Domain
}

func NewOhmSurfaceForm(d battery.Domain) *OhmSurfaceForm {
	return &OhmSurfaceForm{domain: d}
}

func (s *OhmSurfaceForm) Name() string {
	return "surface-form electrode (" + string(s.domain) + ")"
}

func (s *OhmSurfaceForm) ContributeVariables(w *battery.Workspace) error {
	d := s.domain
	phi := symbolic.Add(symbolic.Var(ElectrolytePotVar), symbolic.Var(surfacePotentialVar(d)))
	return w.DefineVariable(potentialVar(d), phi)
}
