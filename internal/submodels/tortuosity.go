package submodels

import (
	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// BruggemanTortuosity derives each domain's electrolyte tortuosity from
// its porosity, eps^b. It reads porosity from the workspace, so the
// porosity submodel must run first.
type BruggemanTortuosity struct{}

func NewBruggemanTortuosity() *BruggemanTortuosity { return &BruggemanTortuosity{} }

func (s *BruggemanTortuosity) Name() string { return "Bruggeman tortuosity" }

func (s *BruggemanTortuosity) ContributeVariables(w *battery.Workspace) error {
	for _, d := range battery.ElectrolyteDomains() {
		eps, err := w.Variable(porosityVar(d))
		if err != nil {
			return err
		}
		bruggeman := symbolic.Param(bruggemanParam(d))
		if err := w.DefineVariable(tortuosityVar(d), symbolic.Pow(eps, bruggeman)); err != nil {
			return err
		}
	}
	return nil
}

func bruggemanParam(d battery.Domain) string {
	return title(d) + " Bruggeman coefficient"
}
