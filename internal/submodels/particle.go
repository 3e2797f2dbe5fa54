package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// FickianParticle models solid diffusion in one electrode's particles as
// a full Fickian PDE with a reaction flux at the particle surface.
type FickianParticle struct {
	domain    battery.Domain
	reactions battery.Reactions
}

func NewFickianParticle(d battery.Domain, rx battery.Reactions) *FickianParticle {
	return &FickianParticle{domain: d, reactions: rx}
}

func (s *FickianParticle) Name() string {
	return "Fickian diffusion particle (" + string(s.domain) + ")"
}

func (s *FickianParticle) conc() string { return concentrationVar(s.domain) }

func (s *FickianParticle) diffusivity() symbolic.Expr {
	return symbolic.Param(side(s.domain) + " particle diffusivity")
}

func (s *FickianParticle) ContributeEquations(w *battery.Workspace) error {
	// dc/dt = div(D grad c)
	rhs := symbolic.Divergence(symbolic.Mul(s.diffusivity(), symbolic.Grad(symbolic.Var(s.conc()))))
	return w.AddEquation(s.conc(), rhs, battery.Differential)
}

func (s *FickianParticle) ContributeBoundaryConditions(w *battery.Workspace) error {
	// Zero flux at the particle centre, reaction flux at the surface.
	surfaceFlux := symbolic.Neg(symbolic.Div(
		s.reactions.InterfacialCurrent(s.domain),
		symbolic.Mul(symbolic.Param("Faraday constant"), s.diffusivity()),
	))
	return w.AddBoundaryConditions(s.conc(), battery.BoundaryPair{
		Left:  battery.BoundaryCondition{Kind: battery.Neumann, Value: symbolic.Num(0)},
		Right: battery.BoundaryCondition{Kind: battery.Neumann, Value: surfaceFlux},
	})
}

func (s *FickianParticle) ContributeInitialConditions(w *battery.Workspace) error {
	return w.AddInitialCondition(s.conc(),
		symbolic.Param("Initial concentration in "+string(s.domain)))
}

// FastParticle assumes diffusion fast enough that particle concentration
// stays uniform, reducing the PDE to an ODE in the surface flux.
type FastParticle struct {
	domain    battery.Domain
	reactions battery.Reactions
}

func NewFastParticle(d battery.Domain, rx battery.Reactions) *FastParticle {
	return &FastParticle{domain: d, reactions: rx}
}

func (s *FastParticle) Name() string {
	return "fast diffusion particle (" + string(s.domain) + ")"
}

func (s *FastParticle) conc() string { return concentrationVar(s.domain) }

func (s *FastParticle) ContributeEquations(w *battery.Workspace) error {
	// dc/dt = -3 j / (R F)
	rhs := symbolic.Neg(symbolic.Div(
		symbolic.Mul(symbolic.Num(3), s.reactions.InterfacialCurrent(s.domain)),
		symbolic.Mul(symbolic.Param(side(s.domain)+" particle radius"), symbolic.Param("Faraday constant")),
	))
	return w.AddEquation(s.conc(), rhs, battery.Differential)
}

func (s *FastParticle) ContributeInitialConditions(w *battery.Workspace) error {
	return w.AddInitialCondition(s.conc(),
		symbolic.Param("Initial concentration in "+string(s.domain)))
}
