package submodels

import (
	"errors"
	"testing"

	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/params"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

func testReactions() battery.Reactions {
	rx := make(battery.Reactions, 2)
	for _, d := range battery.ElectrodeDomains() {
		rx[d] = ReactionFor(d)
	}
	return rx
}

func TestCurrentControl(t *testing.T) {
	w := battery.NewWorkspace()
	w.SetRole("external circuit")

	if err := NewCurrentControl().ContributeVariables(w); err != nil {
		t.Fatal(err)
	}
	if !w.Has(TotalCurrentVar) {
		t.Errorf("expected %q to be defined", TotalCurrentVar)
	}
}

func TestConstantPorosityDefinesAllDomains(t *testing.T) {
	w := battery.NewWorkspace()
	w.SetRole("porosity")

	if err := NewConstantPorosity().ContributeVariables(w); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{
		"Negative electrode porosity",
		"Separator porosity",
		"Positive electrode porosity",
	} {
		if !w.Has(name) {
			t.Errorf("expected %q to be defined", name)
		}
	}
}

func TestBruggemanTortuosityNeedsPorosity(t *testing.T) {
	w := battery.NewWorkspace()
	w.SetRole("tortuosity")

	err := NewBruggemanTortuosity().ContributeVariables(w)
	if !errors.Is(err, battery.ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}

	// With porosity published first, tortuosity derives from it.
	w = battery.NewWorkspace()
	w.SetRole("porosity")
	if err := NewConstantPorosity().ContributeVariables(w); err != nil {
		t.Fatal(err)
	}
	w.SetRole("tortuosity")
	if err := NewBruggemanTortuosity().ContributeVariables(w); err != nil {
		t.Fatal(err)
	}
	if !w.Has("Separator electrolyte tortuosity") {
		t.Error("expected separator tortuosity to be defined")
	}
}

// publishReactionCurrent stands in for the kinetics submodel when a
// variant is exercised on its own.
func publishReactionCurrent(t *testing.T, w *battery.Workspace, d battery.Domain) {
	t.Helper()
	w.SetRole("interface stub")
	if err := w.DefineVariable(InterfacialCurrentVar(d), symbolic.Num(0)); err != nil {
		t.Fatal(err)
	}
}

func TestFickianParticleContributions(t *testing.T) {
	w := battery.NewWorkspace()
	publishReactionCurrent(t, w, battery.Negative)
	w.SetRole("negative particle")
	s := NewFickianParticle(battery.Negative, testReactions())

	if err := s.ContributeEquations(w); err != nil {
		t.Fatal(err)
	}
	if err := s.ContributeBoundaryConditions(w); err != nil {
		t.Fatal(err)
	}
	if err := s.ContributeInitialConditions(w); err != nil {
		t.Fatal(err)
	}

	if err := w.Verify(); err != nil {
		t.Errorf("expected self-consistent contribution, got %v", err)
	}
}

func TestFastParticleIsNonSpatial(t *testing.T) {
	w := battery.NewWorkspace()
	publishReactionCurrent(t, w, battery.Negative)
	w.SetRole("negative particle")
	s := NewFastParticle(battery.Negative, testReactions())

	if err := s.ContributeEquations(w); err != nil {
		t.Fatal(err)
	}
	if err := s.ContributeInitialConditions(w); err != nil {
		t.Fatal(err)
	}

	expr, err := w.Variable("Negative particle concentration")
	if err != nil {
		t.Fatal(err)
	}
	if symbolic.HasSpatialOperator(expr) {
		t.Error("fast-diffusion unknown should be an ODE symbol")
	}
	if err := w.Verify(); err != nil {
		t.Errorf("fast particle should verify without boundary conditions: %v", err)
	}
}

func TestButlerVolmerPublishesReactionCurrent(t *testing.T) {
	rx := testReactions()
	w := battery.NewWorkspace()
	w.SetRole("negative interface")

	if err := NewButlerVolmer(battery.Negative, rx).ContributeVariables(w); err != nil {
		t.Fatal(err)
	}

	v, err := w.Variable(rx[battery.Negative].CurrentVariable)
	if err != nil {
		t.Fatal(err)
	}
	refs := symbolic.FreeVariables(v)
	if len(refs) == 0 {
		t.Error("interfacial current must couple to model variables")
	}
}

func TestSurfaceFormConductivityAnchorsElectrolytePotential(t *testing.T) {
	p := params.Default()
	rx := testReactions()

	// Only the negative-domain instance defines the electrolyte potential.
	w := battery.NewWorkspace()
	w.SetRole("negative electrolyte conductivity")
	neg := NewSurfaceFormConductivity(battery.Negative, battery.Differential, p, rx)
	if err := neg.ContributeVariables(w); err != nil {
		t.Fatal(err)
	}
	if !w.Has(ElectrolytePotVar) {
		t.Error("negative instance must define the electrolyte potential")
	}

	w2 := battery.NewWorkspace()
	w2.SetRole("separator electrolyte conductivity")
	sep := NewSurfaceFormConductivity(battery.Separator, battery.Differential, p, rx)
	if err := sep.ContributeVariables(w2); err != nil {
		t.Fatal(err)
	}
	if w2.Has(ElectrolytePotVar) {
		t.Error("separator instance must not define the electrolyte potential")
	}
}

func TestSurfaceFormConductivityKinds(t *testing.T) {
	p := params.Default()
	rx := testReactions()

	tests := []struct {
		kind   battery.EquationKind
		wantIC bool
	}{
		{battery.Differential, true},
		{battery.Algebraic, false},
	}

	for _, tt := range tests {
		w := battery.NewWorkspace()
		w.SetRole("porosity")
		if err := NewConstantPorosity().ContributeVariables(w); err != nil {
			t.Fatal(err)
		}
		w.SetRole("tortuosity")
		if err := NewBruggemanTortuosity().ContributeVariables(w); err != nil {
			t.Fatal(err)
		}

		w.SetRole("positive electrolyte conductivity")
		s := NewSurfaceFormConductivity(battery.Positive, tt.kind, p, rx)
		if err := s.ContributeEquations(w); err != nil {
			t.Fatal(err)
		}
		if err := s.ContributeInitialConditions(w); err != nil {
			t.Fatal(err)
		}

		m := w.Freeze(battery.DefaultOptions(), "surface form test")

		eq, ok := m.Equation("Positive electrode surface potential difference")
		if !ok {
			t.Fatalf("%s: expected surface potential equation", tt.kind)
		}
		if eq.Kind != tt.kind {
			t.Errorf("expected %s equation, got %s", tt.kind, eq.Kind)
		}
		if _, hasIC := m.InitialCondition(eq.Variable); hasIC != tt.wantIC {
			t.Errorf("%s: expected IC presence %v, got %v", tt.kind, tt.wantIC, hasIC)
		}
	}
}

func TestOhmSurfaceFormDerivesPotential(t *testing.T) {
	w := battery.NewWorkspace()
	w.SetRole("positive electrode")

	if err := NewOhmSurfaceForm(battery.Positive).ContributeVariables(w); err != nil {
		t.Fatal(err)
	}

	v, err := w.Variable("Positive electrode potential")
	if err != nil {
		t.Fatal(err)
	}
	refs := symbolic.FreeVariables(v)
	want := map[string]bool{
		"Electrolyte potential": true,
		"Positive electrode surface potential difference": true,
	}
	for _, r := range refs {
		if !want[r] {
			t.Errorf("unexpected reference %q", r)
		}
		delete(want, r)
	}
	if len(want) != 0 {
		t.Errorf("missing references: %v", want)
	}
}

func TestLumpedThermalCouplesToKinetics(t *testing.T) {
	rx := testReactions()
	w := battery.NewWorkspace()
	w.SetRole("thermal")
	s := NewLumpedThermal(rx)

	if err := s.ContributeEquations(w); err != nil {
		t.Fatal(err)
	}
	if err := s.ContributeInitialConditions(w); err != nil {
		t.Fatal(err)
	}

	expr, err := w.Variable(TemperatureVar)
	if err != nil {
		t.Fatal(err)
	}
	if symbolic.HasSpatialOperator(expr) {
		t.Error("lumped temperature must be an ODE symbol")
	}
}
