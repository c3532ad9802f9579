// Package partial implements the placeholder partial-application transform:
// scanning call arguments into bound/missing slots and reducing them to a
// closure arity with a positional parameter mapping. The evaluator uses both
// to synthesize closures from fun expressions.
package partial

import (
	"github.com/funvibe/parfun/internal/ast"
	"github.com/funvibe/parfun/internal/diagnostics"
)

type SlotKind int

const (
	Bound SlotKind = iota
	Missing
)

// Slot is one argument position of a fun call, classified at scan time.
// Bound slots carry the source expression; Missing slots carry the
// placeholder node for position reporting. Slot order is fixed and never
// reordered.
type Slot struct {
	Kind SlotKind
	Expr ast.Expression
}

// Classify maps each argument of a fun call to a Bound or Missing slot,
// preserving positional order.
func Classify(args []ast.Expression) []Slot {
	slots := make([]Slot, len(args))
	for i, arg := range args {
		if _, ok := arg.(*ast.Placeholder); ok {
			slots[i] = Slot{Kind: Missing, Expr: arg}
		} else {
			slots[i] = Slot{Kind: Bound, Expr: arg}
		}
	}
	return slots
}

// ScanProgram validates placeholder placement across a whole program.
// A placeholder is legal only as a direct argument of a fun-prefixed
// qualified call; every other occurrence is reported, before any evaluation.
func ScanProgram(prog *ast.Program) []*diagnostics.DiagnosticError {
	s := &scanner{}
	for _, stmt := range prog.Statements {
		s.scanStatement(stmt)
	}
	return s.errors
}

type scanner struct {
	errors []*diagnostics.DiagnosticError
}

func (s *scanner) scanStatement(stmt ast.Statement) {
	switch st := stmt.(type) {
	case *ast.BindStatement:
		s.scanExpression(st.Value)
	case *ast.ExpressionStatement:
		s.scanExpression(st.Expression)
	}
}

func (s *scanner) scanExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Placeholder:
		s.reportMisuse(e)
	case *ast.FunExpression:
		// Direct arguments may be placeholders; their subexpressions may not.
		for _, arg := range e.Call.Arguments {
			if _, ok := arg.(*ast.Placeholder); ok {
				continue
			}
			s.scanExpression(arg)
		}
	case *ast.QualifiedCall:
		for _, arg := range e.Arguments {
			s.scanExpression(arg)
		}
	case *ast.CallExpression:
		s.scanExpression(e.Function)
		for _, arg := range e.Arguments {
			s.scanExpression(arg)
		}
	case *ast.ListLiteral:
		for _, el := range e.Elements {
			s.scanExpression(el)
		}
	case *ast.PrefixExpression:
		s.scanExpression(e.Right)
	case *ast.InfixExpression:
		s.scanExpression(e.Left)
		s.scanExpression(e.Right)
	}
}

func (s *scanner) reportMisuse(p *ast.Placeholder) {
	s.errors = append(s.errors, diagnostics.NewError(
		diagnostics.ErrS001,
		p.GetToken(),
		"invalid placeholder usage: _ is only allowed as a direct argument of a fun call",
	))
}
