package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// ButlerVolmer publishes the interfacial current density of one electrode
// as a symmetric Butler-Volmer rate of its overpotential.
type ButlerVolmer struct {
	domain    battery.Domain
	reactions battery.Reactions
}

func NewButlerVolmer(d battery.Domain, rx battery.Reactions) *ButlerVolmer {
	return &ButlerVolmer{domain: d, reactions: rx}
}

func (s *ButlerVolmer) Name() string {
	return "Butler-Volmer kinetics (" + string(s.domain) + ")"
}

func (s *ButlerVolmer) ContributeVariables(w *battery.Workspace) error {
	d := s.domain

	// eta = phi_s - phi_e - U
	eta := symbolic.Sub(
		symbolic.Sub(symbolic.Var(potentialVar(d)), symbolic.Var(ElectrolytePotVar)),
		symbolic.Param(title(d)+" open-circuit potential"),
	)
	if err := w.DefineVariable(overpotentialVar(d), eta); err != nil {
		return err
	}

	rx := s.reactions[d]

	// j = 2 j0 sinh(F eta / 2RT)
	arg := symbolic.Div(
		symbolic.Mul(symbolic.Param("Faraday constant"), symbolic.Var(overpotentialVar(d))),
		symbolic.Mul(symbolic.Num(2),
			symbolic.Mul(symbolic.Param("Ideal gas constant"), symbolic.Var(TemperatureVar))),
	)
	j := symbolic.Mul(
		symbolic.Mul(symbolic.Num(2), symbolic.Param(rx.ExchangeCurrentParameter)),
		symbolic.Sinh(arg),
	)
	return w.DefineVariable(rx.CurrentVariable, j)
}
