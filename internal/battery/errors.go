package battery

import (
	"errors"
	"fmt"
)

// Error taxonomy for model composition.
var (
	// ErrInvalidOption indicates an option value outside its legal set.
	ErrInvalidOption = errors.New("battery: invalid option value")

	// ErrOptionConflict indicates two option values that are individually
	// legal but illegal in combination.
	ErrOptionConflict = errors.New("battery: conflicting option values")

	// ErrDuplicateRole indicates a role registered twice in one build.
	ErrDuplicateRole = errors.New("battery: duplicate submodel role")

	// ErrVariableCollision indicates two submodels publishing the same
	// variable name.
	ErrVariableCollision = errors.New("battery: variable already defined")

	// ErrMissingDependency indicates a submodel reading a variable that no
	// earlier submodel published.
	ErrMissingDependency = errors.New("battery: missing workspace dependency")

	// ErrInconsistentModel indicates a structural defect found after all
	// contributions ran (dangling reference, condition mismatch).
	ErrInconsistentModel = errors.New("battery: inconsistent model")

	// ErrModelFrozen indicates an attempted mutation after the workspace
	// was frozen into a composed model. Always a caller bug.
	ErrModelFrozen = errors.New("battery: model is frozen")
)

// ConfigurationError reports an invalid or contradictory options value.
// Key always names the offending option; ConflictsWith is set when the
// failure is a cross-key constraint.
type ConfigurationError struct {
	Key           string
	Value         string
	ConflictsWith string
	Wrapped       error
}

func (e *ConfigurationError) Error() string {
	if e.ConflictsWith != "" {
		return fmt.Sprintf("option %q = %q conflicts with option %q", e.Key, e.Value, e.ConflictsWith)
	}
	return fmt.Sprintf("option %q has illegal value %q", e.Key, e.Value)
}

func (e *ConfigurationError) Unwrap() error { return e.Wrapped }

// BuildError reports a structural inconsistency discovered during
// composition. Role and Variable identify the offender; OtherRole is set
// for collisions between two contributors.
type BuildError struct {
	Role      string
	Variable  string
	OtherRole string
	Wrapped   error
}

func (e *BuildError) Error() string {
	switch {
	case e.OtherRole != "":
		return fmt.Sprintf("build: variable %q published by both %q and %q", e.Variable, e.OtherRole, e.Role)
	case e.Role != "" && e.Variable != "":
		return fmt.Sprintf("build: role %q: variable %q: %v", e.Role, e.Variable, e.Wrapped)
	case e.Role != "":
		return fmt.Sprintf("build: role %q: %v", e.Role, e.Wrapped)
	case e.Variable != "":
		return fmt.Sprintf("build: variable %q: %v", e.Variable, e.Wrapped)
	}
	return fmt.Sprintf("build: %v", e.Wrapped)
}

func (e *BuildError) Unwrap() error { return e.Wrapped }
