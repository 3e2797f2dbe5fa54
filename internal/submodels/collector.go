package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// UniformCollector assumes perfectly conducting current collectors, so
// the through-cell current density equals the applied one everywhere.
type UniformCollector struct{}

func NewUniformCollector() *UniformCollector { return &UniformCollector{} }

func (s *UniformCollector) Name() string { return "uniform current collector" }

func (s *UniformCollector) ContributeVariables(w *battery.Workspace) error {
	return w.DefineVariable(CollectorCurrentVar, symbolic.Var(TotalCurrentVar))
}

// PotentialPairCollector resolves in-plane potential distributions in
// both collectors for cells with one or two transverse dimensions.
type PotentialPairCollector struct{}

func NewPotentialPairCollector() *PotentialPairCollector { return &PotentialPairCollector{} }

func (s *PotentialPairCollector) Name() string { return "potential-pair current collector" }

func collectorPotentialVar(sideName string) string {
	return sideName + " current collector potential"
}

func (s *PotentialPairCollector) ContributeVariables(w *battery.Workspace) error {
	return w.DefineVariable(CollectorCurrentVar, symbolic.Var(TotalCurrentVar))
}

func (s *PotentialPairCollector) ContributeEquations(w *battery.Workspace) error {
	for _, sideName := range []string{"Negative", "Positive"} {
		sigma := symbolic.Param(sideName + " current collector conductivity")
		// 0 = div(sigma_cc grad phi_cc) - I
		residual := symbolic.Sub(
			symbolic.Divergence(symbolic.Mul(sigma, symbolic.Grad(symbolic.Var(collectorPotentialVar(sideName))))),
			symbolic.Var(CollectorCurrentVar),
		)
		if err := w.AddEquation(collectorPotentialVar(sideName), residual, battery.Algebraic); err != nil {
			return err
		}
	}
	return nil
}

func (s *PotentialPairCollector) ContributeBoundaryConditions(w *battery.Workspace) error {
	ground := battery.BoundaryCondition{Kind: battery.Dirichlet, Value: symbolic.Num(0)}
	zeroFlux := battery.BoundaryCondition{Kind: battery.Neumann, Value: symbolic.Num(0)}

	if err := w.AddBoundaryConditions(collectorPotentialVar("Negative"),
		battery.BoundaryPair{Left: ground, Right: zeroFlux}); err != nil {
		return err
	}

	drain := battery.BoundaryCondition{Kind: battery.Neumann, Value: symbolic.Neg(symbolic.Div(
		symbolic.Var(TotalCurrentVar),
		symbolic.Param("Positive current collector conductivity"),
	))}
	return w.AddBoundaryConditions(collectorPotentialVar("Positive"),
		battery.BoundaryPair{Left: zeroFlux, Right: drain})
}
