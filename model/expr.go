package model

import (
	"math"
	"strconv"
	"strings"
)

// Term is Coef·x[Var].
type Term struct {
	Var  VarID
	Coef float64
}

// LinearExpr is Σ Coef·x[Var] + Const.
type LinearExpr struct {
	Terms []Term
	Const float64
}

// Add appends c·x[v]; zero coefficients are dropped.
func (e *LinearExpr) Add(v VarID, c float64) {
	if c == 0 {
		return
	}
	e.Terms = append(e.Terms, Term{Var: v, Coef: c})
}

// clone returns e with its own term storage.
func (e LinearExpr) clone() LinearExpr {
	if e.Terms != nil {
		e.Terms = append([]Term(nil), e.Terms...)
	}

	return e
}

// Evaluate returns the expression value at values (indexed by VarID).
func (e LinearExpr) Evaluate(values []float64) float64 {
	s := e.Const
	for _, t := range e.Terms {
		s += t.Coef * values[t.Var]
	}

	return s
}

// LogTerm is Coef·log(Arg).
type LogTerm struct {
	Coef float64
	Arg  LinearExpr
}

// Expr is a linear expression plus optional logarithmic terms.
type Expr struct {
	Linear LinearExpr
	Logs   []LogTerm
}

func (e Expr) clone() Expr {
	out := Expr{Linear: e.Linear.clone()}
	if e.Logs != nil {
		out.Logs = make([]LogTerm, len(e.Logs))
		for k, l := range e.Logs {
			out.Logs[k] = LogTerm{Coef: l.Coef, Arg: l.Arg.clone()}
		}
	}

	return out
}

// Evaluate returns the expression value; a non-positive log argument yields NaN.
func (e Expr) Evaluate(values []float64) float64 {
	s := e.Linear.Evaluate(values)
	for _, l := range e.Logs {
		arg := l.Arg.Evaluate(values)
		if arg <= 0 {
			return math.NaN()
		}
		s += l.Coef * math.Log(arg)
	}

	return s
}

// varIDs yields every variable id referenced by e.
func (e Expr) varIDs(yield func(VarID) bool) {
	for _, t := range e.Linear.Terms {
		if !yield(t.Var) {
			return
		}
	}
	for _, l := range e.Logs {
		for _, t := range l.Arg.Terms {
			if !yield(t.Var) {
				return
			}
		}
	}
}

// Format renders e using vars for labels, e.g. "alpha[0] + 2*beta[0] - e[0]".
func (e Expr) Format(vars *Variables) string {
	var b strings.Builder
	writeLinear(&b, e.Linear, vars)
	for _, l := range e.Logs {
		writeCoef(&b, l.Coef, b.Len() == 0)
		b.WriteString("log(")
		var inner strings.Builder
		writeLinear(&inner, l.Arg, vars)
		b.WriteString(inner.String())
		b.WriteString(")")
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

func writeLinear(b *strings.Builder, e LinearExpr, vars *Variables) {
	for _, t := range e.Terms {
		writeCoef(b, t.Coef, b.Len() == 0)
		b.WriteString(vars.Name(t.Var))
	}
	if e.Const != 0 {
		switch {
		case b.Len() == 0:
			b.WriteString(formatNum(e.Const))
		case e.Const < 0:
			b.WriteString(" - " + formatNum(-e.Const))
		default:
			b.WriteString(" + " + formatNum(e.Const))
		}
	}
}

func writeCoef(b *strings.Builder, c float64, first bool) {
	switch {
	case first && c < 0:
		b.WriteString("-")
		c = -c
	case !first && c < 0:
		b.WriteString(" - ")
		c = -c
	case !first:
		b.WriteString(" + ")
	}
	if c != 1 {
		b.WriteString(formatNum(c) + "*")
	}
}

func formatNum(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
