package battery

// Registry is the ordered mapping from role name to the submodel chosen
// for that role in the current build. Insertion order is evaluation
// order: a submodel that reads a workspace variable must be registered
// after the submodel that publishes it.
type Registry struct {
	order   []string
	entries map[string]Submodel
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Submodel)}
}

// Register adds a submodel under a role. Roles are unique per build.
func (r *Registry) Register(role string, s Submodel) error {
	if _, exists := r.entries[role]; exists {
		return &BuildError{Role: role, Wrapped: ErrDuplicateRole}
	}
	r.order = append(r.order, role)
	r.entries[role] = s
	return nil
}

// Roles returns the registered role names in insertion order.
func (r *Registry) Roles() []string {
	roles := make([]string, len(r.order))
	copy(roles, r.order)
	return roles
}

// Get returns the submodel registered under role.
func (r *Registry) Get(role string) (Submodel, bool) {
	s, ok := r.entries[role]
	return s, ok
}

func (r *Registry) Len() int { return len(r.order) }
