package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// ConstantPorosity publishes each domain's porosity as a fixed parameter.
type ConstantPorosity struct{}

func NewConstantPorosity() *ConstantPorosity { return &ConstantPorosity{} }

func (s *ConstantPorosity) Name() string { return "constant porosity" }

func (s *ConstantPorosity) ContributeVariables(w *battery.Workspace) error {
	for _, d := range battery.ElectrolyteDomains() {
		if err := w.DefineVariable(porosityVar(d), symbolic.Param(porosityVar(d))); err != nil {
			return err
		}
	}
	return nil
}

// ReactionDrivenPorosity evolves electrode porosity with the local
// reaction rate; the separator porosity stays a parameter.
type ReactionDrivenPorosity struct {
	reactions battery.Reactions
}

func NewReactionDrivenPorosity(rx battery.Reactions) *ReactionDrivenPorosity {
	return &ReactionDrivenPorosity{reactions: rx}
}

func (s *ReactionDrivenPorosity) Name() string { return "reaction-driven porosity" }

func (s *ReactionDrivenPorosity) ContributeVariables(w *battery.Workspace) error {
	return w.DefineVariable(porosityVar(battery.Separator), symbolic.Param(porosityVar(battery.Separator)))
}

func (s *ReactionDrivenPorosity) ContributeEquations(w *battery.Workspace) error {
	for _, d := range battery.ElectrodeDomains() {
		// d(eps)/dt = -dV * a * j / F
		rate := symbolic.Neg(symbolic.Div(
			symbolic.Mul(
				symbolic.Param(title(d)+" volume change"),
				symbolic.Mul(
					symbolic.Param(title(d)+" surface area density"),
					s.reactions.InterfacialCurrent(d),
				),
			),
			symbolic.Param("Faraday constant"),
		))
		if err := w.AddEquation(porosityVar(d), rate, battery.Differential); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReactionDrivenPorosity) ContributeInitialConditions(w *battery.Workspace) error {
	for _, d := range battery.ElectrodeDomains() {
		if err := w.AddInitialCondition(porosityVar(d), symbolic.Param(porosityVar(d))); err != nil {
			return err
		}
	}
	return nil
}
