package battery

import (
	"errors"
	"testing"

	"github.com/arjun-sk/cellsym/internal/symbolic"
)

type stubSubmodel struct{ name string }

func (s stubSubmodel) Name() string { return s.name }

func TestRegistryOrderAndUniqueness(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("porosity", stubSubmodel{"constant porosity"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("tortuosity", stubSubmodel{"Bruggeman tortuosity"}); err != nil {
		t.Fatal(err)
	}

	err := r.Register("porosity", stubSubmodel{"other"})
	if !errors.Is(err, ErrDuplicateRole) {
		t.Errorf("expected ErrDuplicateRole, got %v", err)
	}

	roles := r.Roles()
	if len(roles) != 2 || roles[0] != "porosity" || roles[1] != "tortuosity" {
		t.Errorf("expected insertion order preserved, got %v", roles)
	}
}

func TestWorkspaceVariableCollision(t *testing.T) {
	w := NewWorkspace()

	w.SetRole("negative electrode")
	if err := w.DefineVariable("Electrode potential", symbolic.Num(0)); err != nil {
		t.Fatal(err)
	}

	w.SetRole("positive electrode")
	err := w.DefineVariable("Electrode potential", symbolic.Num(1))
	if !errors.Is(err, ErrVariableCollision) {
		t.Fatalf("expected ErrVariableCollision, got %v", err)
	}

	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("expected *BuildError, got %T", err)
	}
	if buildErr.Role != "positive electrode" || buildErr.OtherRole != "negative electrode" {
		t.Errorf("collision must name both roles, got %q and %q", buildErr.Role, buildErr.OtherRole)
	}
}

func TestWorkspaceEquationCollidesWithVariable(t *testing.T) {
	w := NewWorkspace()

	w.SetRole("thermal")
	if err := w.DefineVariable("Cell temperature", symbolic.Param("Ambient temperature")); err != nil {
		t.Fatal(err)
	}
	err := w.AddEquation("Cell temperature", symbolic.Num(0), Differential)
	if !errors.Is(err, ErrVariableCollision) {
		t.Errorf("expected ErrVariableCollision, got %v", err)
	}
}

func TestWorkspaceMissingDependency(t *testing.T) {
	w := NewWorkspace()
	w.SetRole("tortuosity")

	_, err := w.Variable("Negative electrode porosity")
	if !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
	var buildErr *BuildError
	if !errors.As(err, &buildErr) || buildErr.Role != "tortuosity" {
		t.Errorf("dependency error must name the reading role: %v", err)
	}
}

func TestWorkspaceReadsEquationUnknownAsSymbol(t *testing.T) {
	w := NewWorkspace()
	w.SetRole("electrolyte diffusion")
	if err := w.AddEquation("Electrolyte concentration", symbolic.Num(0), Differential); err != nil {
		t.Fatal(err)
	}

	expr, err := w.Variable("Electrolyte concentration")
	if err != nil {
		t.Fatal(err)
	}
	v, ok := expr.(symbolic.Variable)
	if !ok || v.Name != "Electrolyte concentration" {
		t.Errorf("expected the unknown's symbol, got %v", expr)
	}
}

func TestVerifyInitialConditionRules(t *testing.T) {
	// Differential equation without an initial condition.
	w := NewWorkspace()
	w.SetRole("negative particle")
	if err := w.AddEquation("c_n", symbolic.Num(0), Differential); err != nil {
		t.Fatal(err)
	}
	if err := w.Verify(); !errors.Is(err, ErrInconsistentModel) {
		t.Errorf("expected ErrInconsistentModel for missing IC, got %v", err)
	}

	// Algebraic equation with a forbidden initial condition.
	w = NewWorkspace()
	w.SetRole("electrolyte conductivity")
	if err := w.AddEquation("phi_e", symbolic.Num(0), Algebraic); err != nil {
		t.Fatal(err)
	}
	if err := w.AddInitialCondition("phi_e", symbolic.Num(0)); err != nil {
		t.Fatal(err)
	}
	if err := w.Verify(); !errors.Is(err, ErrInconsistentModel) {
		t.Errorf("expected ErrInconsistentModel for IC on algebraic equation, got %v", err)
	}
}

func TestVerifyBoundaryConditionRules(t *testing.T) {
	// Spatial equation missing its boundary pair.
	w := NewWorkspace()
	w.SetRole("negative particle")
	spatial := symbolic.Divergence(symbolic.Grad(symbolic.Var("c_n")))
	if err := w.AddEquation("c_n", spatial, Differential); err != nil {
		t.Fatal(err)
	}
	if err := w.AddInitialCondition("c_n", symbolic.Num(1)); err != nil {
		t.Fatal(err)
	}
	if err := w.Verify(); !errors.Is(err, ErrInconsistentModel) {
		t.Errorf("expected ErrInconsistentModel for missing BCs, got %v", err)
	}

	// Complete spatial equation passes.
	zeroFlux := BoundaryCondition{Kind: Neumann, Value: symbolic.Num(0)}
	if err := w.AddBoundaryConditions("c_n", BoundaryPair{Left: zeroFlux, Right: zeroFlux}); err != nil {
		t.Fatal(err)
	}
	if err := w.Verify(); err != nil {
		t.Errorf("expected consistent workspace, got %v", err)
	}
}

func TestVerifyDanglingReference(t *testing.T) {
	w := NewWorkspace()
	w.SetRole("kinetics")
	if err := w.AddEquation("j_n", symbolic.Mul(symbolic.Num(2), symbolic.Var("eta_n")), Algebraic); err != nil {
		t.Fatal(err)
	}
	err := w.Verify()
	if !errors.Is(err, ErrInconsistentModel) {
		t.Fatalf("expected ErrInconsistentModel for dangling reference, got %v", err)
	}
	var buildErr *BuildError
	if !errors.As(err, &buildErr) || buildErr.Variable != "eta_n" {
		t.Errorf("dangling-reference error must name the missing variable: %v", err)
	}
}

func TestFreezeRejectsMutation(t *testing.T) {
	w := NewWorkspace()
	w.SetRole("thermal")
	if err := w.DefineVariable("Cell temperature", symbolic.Param("Ambient temperature")); err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	m := w.Freeze(opts, "test cell")

	before := m.VariableNames()

	mutations := []error{
		m.DefineVariable("x", symbolic.Num(0)),
		m.AddEquation("x", symbolic.Num(0), Algebraic),
		m.AddBoundaryConditions("x", BoundaryPair{}),
		m.AddInitialCondition("x", symbolic.Num(0)),
		w.DefineVariable("y", symbolic.Num(0)),
	}
	for i, err := range mutations {
		if !errors.Is(err, ErrModelFrozen) {
			t.Errorf("mutation %d: expected ErrModelFrozen, got %v", i, err)
		}
	}

	after := m.VariableNames()
	if len(before) != len(after) {
		t.Error("failed mutation must leave the model unchanged")
	}
}

func TestModelProvenance(t *testing.T) {
	w := NewWorkspace()
	w.SetRole("porosity")
	if err := w.DefineVariable("Negative electrode porosity", symbolic.Param("Negative electrode porosity")); err != nil {
		t.Fatal(err)
	}
	w.SetRole("electrolyte diffusion")
	if err := w.AddEquation("Electrolyte concentration", symbolic.Num(0), Differential); err != nil {
		t.Fatal(err)
	}

	m := w.Freeze(DefaultOptions(), "test cell")

	role, ok := m.Provenance("Negative electrode porosity")
	if !ok || role != "porosity" {
		t.Errorf("expected porosity provenance, got %q (%v)", role, ok)
	}
	role, ok = m.Provenance("Electrolyte concentration")
	if !ok || role != "electrolyte diffusion" {
		t.Errorf("expected electrolyte diffusion provenance, got %q (%v)", role, ok)
	}
	if _, ok := m.Provenance("unpublished"); ok {
		t.Error("expected no provenance for unpublished name")
	}
}
