// Package params holds the shared parameter set and empirical property
// closures consumed by submodels. Property closures are pure: symbolic
// inputs in, a symbolic expression out, no state.
package params

import (
	"fmt"

	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// PropertyFunc maps electrolyte concentration and temperature to a
// transport property, symbolically. The builder propagates the returned
// expression into equations unchanged.
type PropertyFunc func(ce, T symbolic.Expr) symbolic.Expr

// Set is the shared parameter set handed to every submodel. Values are
// keyed by the parameter names that appear in expressions, so the same
// names resolve during pointwise evaluation.
type Set struct {
	Values map[string]float64

	ElectrolyteConductivity PropertyFunc
	ElectrolyteDiffusivity  PropertyFunc
}

// Default returns a parameter set for a graphite | LiPF6 EC:DMC | NMC cell.
func Default() *Set {
	return &Set{
		Values: map[string]float64{
			"Faraday constant":                             96485.33,
			"Ideal gas constant":                           8.314,
			"Reference temperature":                        298.15,
			"Ambient temperature":                          298.15,
			"Typical current density":                      24.0,
			"Electrode width":                              0.207,
			"Electrode height":                             0.137,
			"Negative electrode thickness":                 1.0e-4,
			"Separator thickness":                          2.5e-5,
			"Positive electrode thickness":                 1.0e-4,
			"Negative particle radius":                     1.0e-5,
			"Positive particle radius":                     1.0e-5,
			"Negative electrode porosity":                  0.3,
			"Separator porosity":                           1.0,
			"Positive electrode porosity":                  0.3,
			"Negative electrode Bruggeman coefficient":     1.5,
			"Separator Bruggeman coefficient":              1.5,
			"Positive electrode Bruggeman coefficient":     1.5,
			"Negative electrode surface area density":      0.18e6,
			"Positive electrode surface area density":      0.15e6,
			"Negative electrode conductivity":              100.0,
			"Positive electrode conductivity":              10.0,
			"Negative electrode exchange-current density":  2.0,
			"Positive electrode exchange-current density":  6.0,
			"Initial concentration in negative electrode":  19986.0,
			"Initial concentration in positive electrode":  30730.0,
			"Initial electrolyte concentration":            1000.0,
			"Negative particle diffusivity":                3.9e-14,
			"Positive particle diffusivity":                1.0e-13,
			"Cation transference number":                   0.4,
			"Double-layer capacitance":                     0.2,
			"Cell heat capacity":                           2.85e6,
			"Cell cooling coefficient":                     35.0,
			"Negative electrode open-circuit potential":    0.17,
			"Positive electrode open-circuit potential":    4.0,
			"Negative electrode volume change":             -9.7e-6,
			"Positive electrode volume change":             1.1e-5,
			"Negative current collector conductivity":      5.96e7,
			"Positive current collector conductivity":      3.55e7,
		},
		ElectrolyteConductivity: ConductivityLandesfeind2019ECDMC11,
		ElectrolyteDiffusivity:  DiffusivityLandesfeind2019ECDMC11,
	}
}

// Get returns the value of a named parameter.
func (s *Set) Get(name string) (float64, error) {
	v, ok := s.Values[name]
	if !ok {
		return 0, fmt.Errorf("params: unknown parameter %q", name)
	}
	return v, nil
}

// Set overrides a named parameter. The name must already exist: the
// parameter set is a closed namespace, typos should not mint new entries.
func (s *Set) Set(name string, value float64) error {
	if _, ok := s.Values[name]; !ok {
		return fmt.Errorf("params: unknown parameter %q", name)
	}
	s.Values[name] = value
	return nil
}

// Env returns an evaluation environment seeded with every parameter value.
func (s *Set) Env() symbolic.Env {
	env := make(symbolic.Env, len(s.Values))
	for k, v := range s.Values {
		env[k] = v
	}
	return env
}
