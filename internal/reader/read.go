// Package reader turns parse trees into runtime values and loads source
// files for the evaluator.
package reader

import (
	"strconv"

	"github.com/funvibe/altlisp/internal/ast"
	"github.com/funvibe/altlisp/internal/evaluator"
)

// ReadTree converts one parse tree node into a Value. Comments read as nil.
func ReadTree(node ast.Expression) evaluator.Value {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return readNumber(n)
	case *ast.SymbolLiteral:
		return evaluator.NewSymbol(n.Value)
	case *ast.StringLiteral:
		return evaluator.NewString(n.Value)
	case *ast.SExpression:
		return &evaluator.SExpr{Cells: readAll(n.Elements)}
	case *ast.QExpression:
		return &evaluator.QExpr{Cells: readAll(n.Elements)}
	}
	return nil
}

// ReadProgram reads every top-level form into one S-expression.
func ReadProgram(program *ast.Program) *evaluator.SExpr {
	return &evaluator.SExpr{Cells: readAll(program.Expressions)}
}

func readAll(exprs []ast.Expression) []evaluator.Value {
	cells := make([]evaluator.Value, 0, len(exprs))
	for _, e := range exprs {
		if v := ReadTree(e); v != nil {
			cells = append(cells, v)
		}
	}
	return cells
}

// readNumber parses the literal; out of range values read as an Error.
func readNumber(n *ast.NumberLiteral) evaluator.Value {
	if n.IsFloat {
		f, err := strconv.ParseFloat(n.Token.Lexeme, 64)
		if err != nil {
			return evaluator.NewError("Invalid Number.")
		}
		return evaluator.NewFloat(f)
	}
	i, err := strconv.ParseInt(n.Token.Lexeme, 10, 64)
	if err != nil {
		return evaluator.NewError("Invalid Number.")
	}
	return evaluator.NewInteger(i)
}
