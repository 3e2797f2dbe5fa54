package battery

import (
	"fmt"

	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// EquationKind distinguishes differential unknowns (which need an initial
// condition) from algebraic constraints (which must not have one).
type EquationKind int

const (
	Differential EquationKind = iota
	Algebraic
)

func (k EquationKind) String() string {
	if k == Differential {
		return "differential"
	}
	return "algebraic"
}

// BoundaryKind is the type of a boundary condition.
type BoundaryKind int

const (
	Dirichlet BoundaryKind = iota
	Neumann
)

func (k BoundaryKind) String() string {
	if k == Dirichlet {
		return "Dirichlet"
	}
	return "Neumann"
}

// BoundaryCondition fixes a value (Dirichlet) or flux (Neumann) at one
// boundary of a variable's domain.
type BoundaryCondition struct {
	Kind  BoundaryKind
	Value symbolic.Expr
}

// BoundaryPair is the left/right condition pair for one variable.
type BoundaryPair struct {
	Left  BoundaryCondition
	Right BoundaryCondition
}

// Equation is one governing equation: for differential kind, Expr is
// d(Variable)/dt; for algebraic kind, Expr is the residual constrained
// to zero.
type Equation struct {
	Variable string
	Expr     symbolic.Expr
	Kind     EquationKind
	Role     string
}

// VariableDef is a derived variable: a name defined by an expression.
type VariableDef struct {
	Name string
	Expr symbolic.Expr
	Role string
}

// Workspace is the mutable accumulator submodels write into during a
// build. It is owned by one builder, handed in turn to each submodel's
// contribution calls, then frozen into a Model. A frozen workspace
// rejects every mutation.
type Workspace struct {
	varOrder []string
	vars     map[string]VariableDef

	eqOrder   []string
	equations map[string]Equation

	boundaries map[string]BoundaryPair
	bcRole     map[string]string

	initials map[string]symbolic.Expr
	icRole   map[string]string

	role   string
	frozen bool
}

func NewWorkspace() *Workspace {
	return &Workspace{
		vars:       make(map[string]VariableDef),
		equations:  make(map[string]Equation),
		boundaries: make(map[string]BoundaryPair),
		bcRole:     make(map[string]string),
		initials:   make(map[string]symbolic.Expr),
		icRole:     make(map[string]string),
	}
}

// SetRole marks which role's contributions are currently running, for
// provenance and collision reporting. The builder calls this before each
// registry entry.
func (w *Workspace) SetRole(role string) { w.role = role }

// definedBy returns the role that already owns name, via either a derived
// definition or a governing equation.
func (w *Workspace) definedBy(name string) (string, bool) {
	if v, ok := w.vars[name]; ok {
		return v.Role, true
	}
	if eq, ok := w.equations[name]; ok {
		return eq.Role, true
	}
	return "", false
}

// DefineVariable publishes a derived variable.
func (w *Workspace) DefineVariable(name string, expr symbolic.Expr) error {
	if w.frozen {
		return ErrModelFrozen
	}
	if other, ok := w.definedBy(name); ok {
		return &BuildError{Role: w.role, Variable: name, OtherRole: other, Wrapped: ErrVariableCollision}
	}
	w.varOrder = append(w.varOrder, name)
	w.vars[name] = VariableDef{Name: name, Expr: expr, Role: w.role}
	return nil
}

// AddEquation publishes a governing equation and thereby defines its
// unknown variable.
func (w *Workspace) AddEquation(variable string, expr symbolic.Expr, kind EquationKind) error {
	if w.frozen {
		return ErrModelFrozen
	}
	if other, ok := w.definedBy(variable); ok {
		return &BuildError{Role: w.role, Variable: variable, OtherRole: other, Wrapped: ErrVariableCollision}
	}
	w.eqOrder = append(w.eqOrder, variable)
	w.equations[variable] = Equation{Variable: variable, Expr: expr, Kind: kind, Role: w.role}
	return nil
}

// AddBoundaryConditions publishes the boundary pair for a variable.
func (w *Workspace) AddBoundaryConditions(variable string, pair BoundaryPair) error {
	if w.frozen {
		return ErrModelFrozen
	}
	if other, ok := w.bcRole[variable]; ok {
		return &BuildError{Role: w.role, Variable: variable, OtherRole: other, Wrapped: ErrVariableCollision}
	}
	w.boundaries[variable] = pair
	w.bcRole[variable] = w.role
	return nil
}

// AddInitialCondition publishes the initial condition for a variable.
func (w *Workspace) AddInitialCondition(variable string, expr symbolic.Expr) error {
	if w.frozen {
		return ErrModelFrozen
	}
	if other, ok := w.icRole[variable]; ok {
		return &BuildError{Role: w.role, Variable: variable, OtherRole: other, Wrapped: ErrVariableCollision}
	}
	w.initials[variable] = expr
	w.icRole[variable] = w.role
	return nil
}

// Variable reads an already-published derived variable. A submodel may
// only read what an earlier-ordered submodel wrote; a miss is a build
// dependency error naming the reader.
func (w *Workspace) Variable(name string) (symbolic.Expr, error) {
	if v, ok := w.vars[name]; ok {
		return v.Expr, nil
	}
	if _, ok := w.equations[name]; ok {
		// Equation-governed unknowns have no closed form; readers couple
		// to them through the symbol.
		return symbolic.Var(name), nil
	}
	return nil, &BuildError{Role: w.role, Variable: name, Wrapped: ErrMissingDependency}
}

// Has reports whether name is defined, by expression or by equation.
func (w *Workspace) Has(name string) bool {
	_, ok := w.definedBy(name)
	return ok
}

// Verify runs the post-contribution consistency checks:
// every differential equation has exactly one initial condition and
// algebraic equations have none; boundary pairs exist exactly for
// equations containing spatial operators; every variable referenced by
// any expression is defined somewhere in the workspace.
func (w *Workspace) Verify() error {
	for _, name := range w.eqOrder {
		eq := w.equations[name]
		_, hasIC := w.initials[name]
		if eq.Kind == Differential && !hasIC {
			return &BuildError{Role: eq.Role, Variable: name,
				Wrapped: fmt.Errorf("%w: differential equation missing initial condition", ErrInconsistentModel)}
		}
		if eq.Kind == Algebraic && hasIC {
			return &BuildError{Role: w.icRole[name], Variable: name,
				Wrapped: fmt.Errorf("%w: initial condition given for algebraic equation", ErrInconsistentModel)}
		}

		_, hasBC := w.boundaries[name]
		spatial := symbolic.HasSpatialOperator(eq.Expr)
		if spatial && !hasBC {
			return &BuildError{Role: eq.Role, Variable: name,
				Wrapped: fmt.Errorf("%w: spatial equation missing boundary conditions", ErrInconsistentModel)}
		}
		if !spatial && hasBC {
			return &BuildError{Role: w.bcRole[name], Variable: name,
				Wrapped: fmt.Errorf("%w: boundary conditions given for non-spatial equation", ErrInconsistentModel)}
		}
	}

	for name, role := range w.icRole {
		if _, ok := w.equations[name]; !ok {
			return &BuildError{Role: role, Variable: name,
				Wrapped: fmt.Errorf("%w: initial condition for variable with no equation", ErrInconsistentModel)}
		}
	}
	for name, role := range w.bcRole {
		if _, ok := w.equations[name]; !ok {
			return &BuildError{Role: role, Variable: name,
				Wrapped: fmt.Errorf("%w: boundary conditions for variable with no equation", ErrInconsistentModel)}
		}
	}

	return w.verifyReferences()
}

// verifyReferences checks for dangling variable references across every
// expression in the workspace.
func (w *Workspace) verifyReferences() error {
	check := func(owner string, role string, expr symbolic.Expr) error {
		for _, ref := range symbolic.FreeVariables(expr) {
			if !w.Has(ref) {
				return &BuildError{Role: role, Variable: ref,
					Wrapped: fmt.Errorf("%w: %q references undefined variable", ErrInconsistentModel, owner)}
			}
		}
		return nil
	}

	for _, name := range w.varOrder {
		v := w.vars[name]
		if err := check(name, v.Role, v.Expr); err != nil {
			return err
		}
	}
	for _, name := range w.eqOrder {
		eq := w.equations[name]
		if err := check(name, eq.Role, eq.Expr); err != nil {
			return err
		}
	}
	for name, pair := range w.boundaries {
		if err := check(name, w.bcRole[name], pair.Left.Value); err != nil {
			return err
		}
		if err := check(name, w.bcRole[name], pair.Right.Value); err != nil {
			return err
		}
	}
	for name, expr := range w.initials {
		if err := check(name, w.icRole[name], expr); err != nil {
			return err
		}
	}
	return nil
}

// Freeze seals the workspace and returns it as an immutable Model.
// Every later mutation through either handle fails with ErrModelFrozen.
func (w *Workspace) Freeze(opts Options, name string) *Model {
	w.frozen = true
	return &Model{name: name, options: opts, ws: w}
}
