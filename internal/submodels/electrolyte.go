package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/params"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// effectiveTransport multiplies a bulk transport property by the domain
// tortuosities already published to the workspace, summing the per-domain
// flux divergences. The tortuosity submodel must have run first.
func effectiveFluxSum(w *battery.Workspace, bulk symbolic.Expr, field string) (symbolic.Expr, error) {
	terms := make([]symbolic.Expr, 0, 3)
	for _, d := range battery.ElectrolyteDomains() {
		tort, err := w.Variable(tortuosityVar(d))
		if err != nil {
			return nil, err
		}
		eff := symbolic.Mul(tort, bulk)
		terms = append(terms, symbolic.Divergence(symbolic.Mul(eff, symbolic.Grad(symbolic.Var(field)))))
	}
	return symbolic.Sum(terms...), nil
}

// reactionSourceSum is the total interfacial source, sum of a*j over the
// reacting domains.
func reactionSourceSum(rx battery.Reactions) symbolic.Expr {
	terms := make([]symbolic.Expr, 0, 2)
	for _, d := range battery.ElectrodeDomains() {
		terms = append(terms, symbolic.Mul(
			symbolic.Param(rx[d].SurfaceAreaParameter), rx.InterfacialCurrent(d)))
	}
	return symbolic.Sum(terms...)
}

// DiffusionFull is Stefan-Maxwell diffusion of salt in the electrolyte,
// with the empirical diffusivity closure propagated in unchanged.
type DiffusionFull struct {
	params    *params.Set
	reactions battery.Reactions
}

func NewDiffusionFull(p *params.Set, rx battery.Reactions) *DiffusionFull {
	return &DiffusionFull{params: p, reactions: rx}
}

func (s *DiffusionFull) Name() string { return "full electrolyte diffusion" }

func (s *DiffusionFull) ContributeEquations(w *battery.Workspace) error {
	de := s.params.ElectrolyteDiffusivity(symbolic.Var(ElectrolyteConcVar), symbolic.Var(TemperatureVar))

	flux, err := effectiveFluxSum(w, de, ElectrolyteConcVar)
	if err != nil {
		return err
	}

	// eps dc/dt = div(D_eff grad c) + (1 - t+) sum(a j) / F
	migration := symbolic.Mul(
		symbolic.Div(
			symbolic.Sub(symbolic.Num(1), symbolic.Param("Cation transference number")),
			symbolic.Param("Faraday constant"),
		),
		reactionSourceSum(s.reactions),
	)

	eps, err := w.Variable(porosityVar(battery.Separator))
	if err != nil {
		return err
	}
	rhs := symbolic.Div(symbolic.Add(flux, migration), eps)
	return w.AddEquation(ElectrolyteConcVar, rhs, battery.Differential)
}

func (s *DiffusionFull) ContributeBoundaryConditions(w *battery.Workspace) error {
	return w.AddBoundaryConditions(ElectrolyteConcVar, zeroFluxPair())
}

func (s *DiffusionFull) ContributeInitialConditions(w *battery.Workspace) error {
	return w.AddInitialCondition(ElectrolyteConcVar, symbolic.Param("Initial electrolyte concentration"))
}

// ConductivityFull is the full MacInnes equation for the electrolyte
// potential, one algebraic constraint over the whole cell.
type ConductivityFull struct {
	params    *params.Set
	reactions battery.Reactions
}

func NewConductivityFull(p *params.Set, rx battery.Reactions) *ConductivityFull {
	return &ConductivityFull{params: p, reactions: rx}
}

func (s *ConductivityFull) Name() string { return "full electrolyte conductivity" }

func (s *ConductivityFull) ContributeEquations(w *battery.Workspace) error {
	kappa := s.params.ElectrolyteConductivity(symbolic.Var(ElectrolyteConcVar), symbolic.Var(TemperatureVar))

	flux, err := effectiveFluxSum(w, kappa, ElectrolytePotVar)
	if err != nil {
		return err
	}

	// 0 = div(kappa_eff grad phi_e) + sum(a j)
	residual := symbolic.Add(flux, reactionSourceSum(s.reactions))
	return w.AddEquation(ElectrolytePotVar, residual, battery.Algebraic)
}

func (s *ConductivityFull) ContributeBoundaryConditions(w *battery.Workspace) error {
	return w.AddBoundaryConditions(ElectrolytePotVar, zeroFluxPair())
}

// SurfaceFormConductivity expresses one domain's conductivity through an
// explicit surface potential difference equation, differential (with a
// double-layer charging term) or algebraic. The negative-domain instance
// also anchors the electrolyte potential against the grounded negative
// electrode.
type SurfaceFormConductivity struct {
	domain    battery.Domain
	kind      battery.EquationKind
	params    *params.Set
	reactions battery.Reactions
}

func NewSurfaceFormConductivity(d battery.Domain, kind battery.EquationKind, p *params.Set, rx battery.Reactions) *SurfaceFormConductivity {
	return &SurfaceFormConductivity{domain: d, kind: kind, params: p, reactions: rx}
}

func (s *SurfaceFormConductivity) Name() string {
	return s.kind.String() + " surface-form conductivity (" + string(s.domain) + ")"
}

func (s *SurfaceFormConductivity) ContributeVariables(w *battery.Workspace) error {
	if s.domain != battery.Negative {
		return nil
	}
	phi := symbolic.Neg(symbolic.Var(surfacePotentialVar(battery.Negative)))
	return w.DefineVariable(ElectrolytePotVar, phi)
}

func (s *SurfaceFormConductivity) ContributeEquations(w *battery.Workspace) error {
	d := s.domain
	kappa := s.params.ElectrolyteConductivity(symbolic.Var(ElectrolyteConcVar), symbolic.Var(TemperatureVar))

	tort, err := w.Variable(tortuosityVar(d))
	if err != nil {
		return err
	}
	flux := symbolic.Divergence(symbolic.Mul(
		symbolic.Mul(tort, kappa),
		symbolic.Grad(symbolic.Var(surfacePotentialVar(d))),
	))

	// The separator carries no reaction.
	source := symbolic.Expr(symbolic.Num(0))
	if d != battery.Separator {
		source = symbolic.Mul(
			symbolic.Param(s.reactions[d].SurfaceAreaParameter), s.reactions.InterfacialCurrent(d))
	}
	residual := symbolic.Sub(flux, source)

	if s.kind == battery.Differential {
		// C_dl d(delta_phi)/dt = div(kappa_eff grad delta_phi) - a j
		rhs := symbolic.Div(residual, symbolic.Param("Double-layer capacitance"))
		return w.AddEquation(surfacePotentialVar(d), rhs, battery.Differential)
	}
	return w.AddEquation(surfacePotentialVar(d), residual, battery.Algebraic)
}

func (s *SurfaceFormConductivity) ContributeBoundaryConditions(w *battery.Workspace) error {
	return w.AddBoundaryConditions(surfacePotentialVar(s.domain), zeroFluxPair())
}

func (s *SurfaceFormConductivity) ContributeInitialConditions(w *battery.Workspace) error {
	if s.kind != battery.Differential {
		return nil
	}
	// Start from the open-circuit potential difference.
	init := symbolic.Expr(symbolic.Num(0))
	if s.domain != battery.Separator {
		init = symbolic.Param(title(s.domain) + " open-circuit potential")
	}
	return w.AddInitialCondition(surfacePotentialVar(s.domain), init)
}
