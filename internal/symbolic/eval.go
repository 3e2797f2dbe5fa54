package symbolic

import (
	"errors"
	"fmt"
	"math"
)

// ErrSpatial indicates an attempt to evaluate an expression containing a
// spatial operator pointwise. Only the discretizer can give those meaning.
var ErrSpatial = errors.New("symbolic: cannot evaluate spatial operator pointwise")

// Env supplies numeric values for variables and parameters during Eval.
type Env map[string]float64

// Eval evaluates e pointwise under env. Variables and parameters both
// resolve through env by name; a missing name is an error, as is any
// spatial operator.
func Eval(e Expr, env Env) (float64, error) {
	switch n := e.(type) {
	case Scalar:
		return n.Value, nil
	case Parameter:
		v, ok := env[n.Name]
		if !ok {
			return 0, fmt.Errorf("symbolic: no value for parameter %q", n.Name)
		}
		return v, nil
	case Variable:
		v, ok := env[n.Name]
		if !ok {
			return 0, fmt.Errorf("symbolic: no value for variable %q", n.Name)
		}
		return v, nil
	case negate:
		v, err := Eval(n.arg, env)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case binary:
		l, err := Eval(n.left, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.right, env)
		if err != nil {
			return 0, err
		}
		switch n.op {
		case opAdd:
			return l + r, nil
		case opSub:
			return l - r, nil
		case opMul:
			return l * r, nil
		case opDiv:
			if r == 0 {
				return 0, errors.New("symbolic: division by zero")
			}
			return l / r, nil
		case opPow:
			return math.Pow(l, r), nil
		}
		return 0, fmt.Errorf("symbolic: unknown binary op %d", n.op)
	case call:
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := Eval(a, env)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return evalCall(n.fn, args)
	case gradient, divergence:
		return 0, ErrSpatial
	}
	return 0, fmt.Errorf("symbolic: unknown node %T", e)
}

func evalCall(fn string, args []float64) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("symbolic: %s expects 1 argument, got %d", fn, len(args))
	}
	x := args[0]
	switch fn {
	case "exp":
		return math.Exp(x), nil
	case "log":
		if x <= 0 {
			return 0, fmt.Errorf("symbolic: log of non-positive value %g", x)
		}
		return math.Log(x), nil
	case "sqrt":
		if x < 0 {
			return 0, fmt.Errorf("symbolic: sqrt of negative value %g", x)
		}
		return math.Sqrt(x), nil
	case "sinh":
		return math.Sinh(x), nil
	case "cosh":
		return math.Cosh(x), nil
	case "tanh":
		return math.Tanh(x), nil
	}
	return 0, fmt.Errorf("symbolic: unknown function %q", fn)
}
