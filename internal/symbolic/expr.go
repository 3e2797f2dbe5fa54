// Package symbolic provides the small expression tree the model builder
// accumulates. Expressions are immutable once constructed and safe to share.
package symbolic

import (
	"fmt"
	"sort"
	"strings"
)

// Expr is a node in a symbolic expression tree.
type Expr interface {
	String() string
	children() []Expr
}

// Scalar is a numeric constant.
type Scalar struct {
	Value float64
}

// Parameter is a named physical parameter, resolved outside the model.
type Parameter struct {
	Name string
}

// Variable is a named model variable, defined by some submodel.
type Variable struct {
	Name string
}

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
)

type binary struct {
	op    binOp
	left  Expr
	right Expr
}

type negate struct {
	arg Expr
}

// call applies a named elementary function (exp, sqrt, sinh, ...).
type call struct {
	fn   string
	args []Expr
}

// gradient and divergence are spatial operators. Expressions containing
// them cannot be evaluated pointwise; they exist for the discretizer.
type gradient struct {
	arg Expr
}

type divergence struct {
	arg Expr
}

func Num(v float64) Expr     { return Scalar{Value: v} }
func Param(name string) Expr { return Parameter{Name: name} }
func Var(name string) Expr   { return Variable{Name: name} }

func Add(a, b Expr) Expr { return binary{op: opAdd, left: a, right: b} }
func Sub(a, b Expr) Expr { return binary{op: opSub, left: a, right: b} }
func Mul(a, b Expr) Expr { return binary{op: opMul, left: a, right: b} }
func Div(a, b Expr) Expr { return binary{op: opDiv, left: a, right: b} }
func Pow(a, b Expr) Expr { return binary{op: opPow, left: a, right: b} }
func Neg(a Expr) Expr    { return negate{arg: a} }

func Exp(a Expr) Expr  { return call{fn: "exp", args: []Expr{a}} }
func Log(a Expr) Expr  { return call{fn: "log", args: []Expr{a}} }
func Sqrt(a Expr) Expr { return call{fn: "sqrt", args: []Expr{a}} }
func Sinh(a Expr) Expr { return call{fn: "sinh", args: []Expr{a}} }
func Cosh(a Expr) Expr { return call{fn: "cosh", args: []Expr{a}} }
func Tanh(a Expr) Expr { return call{fn: "tanh", args: []Expr{a}} }

// Grad is the spatial gradient operator.
func Grad(a Expr) Expr { return gradient{arg: a} }

// Divergence is the spatial divergence operator.
func Divergence(a Expr) Expr { return divergence{arg: a} }

// Sum folds a list of terms into a balanced chain of additions.
// Sum of nothing is zero.
func Sum(terms ...Expr) Expr {
	if len(terms) == 0 {
		return Scalar{Value: 0}
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = Add(acc, t)
	}
	return acc
}

func (s Scalar) children() []Expr     { return nil }
func (p Parameter) children() []Expr  { return nil }
func (v Variable) children() []Expr   { return nil }
func (b binary) children() []Expr     { return []Expr{b.left, b.right} }
func (n negate) children() []Expr     { return []Expr{n.arg} }
func (c call) children() []Expr       { return c.args }
func (g gradient) children() []Expr   { return []Expr{g.arg} }
func (d divergence) children() []Expr { return []Expr{d.arg} }

func (s Scalar) String() string { return fmt.Sprintf("%g", s.Value) }

func (p Parameter) String() string { return "[" + p.Name + "]" }
func (v Variable) String() string  { return "{" + v.Name + "}" }

func (b binary) String() string {
	var op string
	switch b.op {
	case opAdd:
		op = " + "
	case opSub:
		op = " - "
	case opMul:
		op = " * "
	case opDiv:
		op = " / "
	case opPow:
		op = " ^ "
	}
	return "(" + b.left.String() + op + b.right.String() + ")"
}

func (n negate) String() string { return "-(" + n.arg.String() + ")" }

func (c call) String() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.String()
	}
	return c.fn + "(" + strings.Join(parts, ", ") + ")"
}

func (g gradient) String() string   { return "grad(" + g.arg.String() + ")" }
func (d divergence) String() string { return "div(" + d.arg.String() + ")" }

// Walk visits e and every descendant in depth-first order.
func Walk(e Expr, visit func(Expr)) {
	visit(e)
	for _, c := range e.children() {
		Walk(c, visit)
	}
}

// FreeVariables returns the sorted set of variable names referenced by e.
func FreeVariables(e Expr) []string {
	seen := make(map[string]bool)
	Walk(e, func(n Expr) {
		if v, ok := n.(Variable); ok {
			seen[v.Name] = true
		}
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parameters returns the sorted set of parameter names referenced by e.
func Parameters(e Expr) []string {
	seen := make(map[string]bool)
	Walk(e, func(n Expr) {
		if p, ok := n.(Parameter); ok {
			seen[p.Name] = true
		}
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasSpatialOperator reports whether e contains a gradient or divergence.
// Equations containing spatial operators need boundary conditions.
func HasSpatialOperator(e Expr) bool {
	found := false
	Walk(e, func(n Expr) {
		switch n.(type) {
		case gradient, divergence:
			found = true
		}
	})
	return found
}
