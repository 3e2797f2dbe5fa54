package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// Isothermal pins the cell temperature to ambient.
type Isothermal struct{}

func NewIsothermal() *Isothermal { return &Isothermal{} }

func (s *Isothermal) Name() string { return "isothermal" }

func (s *Isothermal) ContributeVariables(w *battery.Workspace) error {
	return w.DefineVariable(TemperatureVar, symbolic.Param("Ambient temperature"))
}

// LumpedThermal evolves a single volume-averaged cell temperature with
// irreversible reaction heating and Newton cooling.
type LumpedThermal struct {
	reactions battery.Reactions
}

func NewLumpedThermal(rx battery.Reactions) *LumpedThermal {
	return &LumpedThermal{reactions: rx}
}

func (s *LumpedThermal) Name() string { return "lumped thermal" }

func (s *LumpedThermal) ContributeEquations(w *battery.Workspace) error {
	// Q = sum over electrodes of a j eta
	heats := make([]symbolic.Expr, 0, 2)
	for _, d := range battery.ElectrodeDomains() {
		heats = append(heats, symbolic.Mul(
			symbolic.Mul(symbolic.Param(s.reactions[d].SurfaceAreaParameter), s.reactions.InterfacialCurrent(d)),
			symbolic.Var(overpotentialVar(d)),
		))
	}
	heating := symbolic.Sum(heats...)

	cooling := symbolic.Mul(
		symbolic.Param("Cell cooling coefficient"),
		symbolic.Sub(symbolic.Var(TemperatureVar), symbolic.Param("Ambient temperature")),
	)

	// rho c_p dT/dt = Q - h (T - T_amb)
	rhs := symbolic.Div(symbolic.Sub(heating, cooling), symbolic.Param("Cell heat capacity"))
	return w.AddEquation(TemperatureVar, rhs, battery.Differential)
}

func (s *LumpedThermal) ContributeInitialConditions(w *battery.Workspace) error {
	return w.AddInitialCondition(TemperatureVar, symbolic.Param("Ambient temperature"))
}
