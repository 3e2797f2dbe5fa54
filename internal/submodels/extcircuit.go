package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// CurrentControl drives the cell with an applied current density. It runs
// first so every later submodel can read the total current.
type CurrentControl struct{}

func NewCurrentControl() *CurrentControl { return &CurrentControl{} }

func (s *CurrentControl) Name() string { return "current-controlled external circuit" }

func (s *CurrentControl) ContributeVariables(w *battery.Workspace) error {
	return w.DefineVariable(TotalCurrentVar, symbolic.Param("Typical current density"))
}
