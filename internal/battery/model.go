package battery

import "github.com/arjun-sk/cellsym/internal/symbolic"

// Model is the frozen result of a build: the merged symbolic system plus
// the options that produced it and per-entry provenance. It is read-only;
// the mutators exist so that a caller holding a Model instead of a
// Workspace still gets a clear error rather than silent acceptance.
type Model struct {
	name    string
	options Options
	ws      *Workspace
}

func (m *Model) Name() string     { return m.name }
func (m *Model) Options() Options { return m.options }

// VariableNames returns derived variable names in publication order.
func (m *Model) VariableNames() []string {
	names := make([]string, len(m.ws.varOrder))
	copy(names, m.ws.varOrder)
	return names
}

// EquationNames returns equation unknowns in publication order.
func (m *Model) EquationNames() []string {
	names := make([]string, len(m.ws.eqOrder))
	copy(names, m.ws.eqOrder)
	return names
}

// VariableDefinition returns the derived variable named name.
func (m *Model) VariableDefinition(name string) (VariableDef, bool) {
	v, ok := m.ws.vars[name]
	return v, ok
}

// Equation returns the governing equation for name.
func (m *Model) Equation(name string) (Equation, bool) {
	eq, ok := m.ws.equations[name]
	return eq, ok
}

// BoundaryConditions returns the boundary pair for name, if any.
func (m *Model) BoundaryConditions(name string) (BoundaryPair, bool) {
	p, ok := m.ws.boundaries[name]
	return p, ok
}

// InitialCondition returns the initial condition for name, if any.
func (m *Model) InitialCondition(name string) (symbolic.Expr, bool) {
	e, ok := m.ws.initials[name]
	return e, ok
}

// Provenance returns the role that published name, as a derived variable
// or an equation unknown.
func (m *Model) Provenance(name string) (string, bool) {
	return m.ws.definedBy(name)
}

// DefineVariable always fails: the model is frozen.
func (m *Model) DefineVariable(name string, expr symbolic.Expr) error {
	return m.ws.DefineVariable(name, expr)
}

// AddEquation always fails: the model is frozen.
func (m *Model) AddEquation(variable string, expr symbolic.Expr, kind EquationKind) error {
	return m.ws.AddEquation(variable, expr, kind)
}

// AddBoundaryConditions always fails: the model is frozen.
func (m *Model) AddBoundaryConditions(variable string, pair BoundaryPair) error {
	return m.ws.AddBoundaryConditions(variable, pair)
}

// AddInitialCondition always fails: the model is frozen.
func (m *Model) AddInitialCondition(variable string, expr symbolic.Expr) error {
	return m.ws.AddInitialCondition(variable, expr)
}
