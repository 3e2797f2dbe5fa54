package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// NoConvection pins the volume-averaged velocity to zero.
type NoConvection struct{}

func NewNoConvection() *NoConvection { return &NoConvection{} }

func (s *NoConvection) Name() string { return "no convection" }

func (s *NoConvection) ContributeVariables(w *battery.Workspace) error {
	return w.DefineVariable(VelocityVar, symbolic.Num(0))
}

// FullConvection derives the volume-averaged velocity from the net molar
// volume change of the interfacial reactions.
type FullConvection struct {
	reactions battery.Reactions
}

func NewFullConvection(rx battery.Reactions) *FullConvection {
	return &FullConvection{reactions: rx}
}

func (s *FullConvection) Name() string { return "full convection" }

func (s *FullConvection) ContributeVariables(w *battery.Workspace) error {
	terms := make([]symbolic.Expr, 0, 2)
	for _, d := range battery.ElectrodeDomains() {
		terms = append(terms, symbolic.Div(
			symbolic.Mul(symbolic.Param(title(d)+" volume change"), s.reactions.InterfacialCurrent(d)),
			symbolic.Param("Faraday constant"),
		))
	}
	return w.DefineVariable(VelocityVar, symbolic.Sum(terms...))
}
