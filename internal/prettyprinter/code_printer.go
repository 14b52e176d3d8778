package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/altlisp/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

const indentUnit = "  "

// CodePrinter lays a parse tree back out as source. A list that fits in
// the remaining width stays on one line; otherwise its head stays on the
// opening line and every other element goes on its own indented line.
type CodePrinter struct {
	buf       bytes.Buffer
	indent    int
	lineWidth int // max line width (0 = unlimited)
	column    int // current column position
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{lineWidth: 80}
}

func NewCodePrinterWithWidth(width int) *CodePrinter {
	return &CodePrinter{lineWidth: width}
}

func (p *CodePrinter) SetLineWidth(width int) {
	p.lineWidth = width
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	p.column += len(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteByte('\n')
	p.column = 0
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(indentUnit)
	}
	p.column = p.indent * len(indentUnit)
}

// PrintProgram writes each top-level form on its own line.
func (p *CodePrinter) PrintProgram(n *ast.Program) {
	for _, expr := range n.Expressions {
		p.writeIndent()
		p.printExpr(expr)
		p.writeln()
	}
}

func (p *CodePrinter) printExpr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.SExpression:
		p.printList("(", ")", e.Elements)
	case *ast.QExpression:
		p.printList("{", "}", e.Elements)
	case *ast.Comment:
		p.write(strings.TrimRight(e.Text, " \t"))
	default:
		p.write(expr.TokenLiteral())
	}
}

func (p *CodePrinter) printList(open, close string, elements []ast.Expression) {
	if flat, ok := flatten(open, close, elements); ok && p.fits(flat) {
		p.write(flat)
		return
	}

	p.write(open)
	p.indent++
	for i, el := range elements {
		if i > 0 {
			p.writeln()
			p.writeIndent()
		}
		p.printExpr(el)
	}
	if n := len(elements); n > 0 {
		if _, ok := elements[n-1].(*ast.Comment); ok {
			p.writeln()
			p.writeIndent()
		}
	}
	p.indent--
	p.write(close)
}

func (p *CodePrinter) fits(s string) bool {
	return p.lineWidth <= 0 || p.column+len(s) <= p.lineWidth
}

// flatten renders a list on one line. Lists holding comments cannot be
// flattened.
func flatten(open, close string, elements []ast.Expression) (string, bool) {
	var sb strings.Builder
	sb.WriteString(open)
	for i, el := range elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := el.(type) {
		case *ast.Comment:
			return "", false
		case *ast.SExpression:
			s, ok := flatten("(", ")", e.Elements)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		case *ast.QExpression:
			s, ok := flatten("{", "}", e.Elements)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		default:
			sb.WriteString(el.TokenLiteral())
		}
	}
	sb.WriteString(close)
	return sb.String(), true
}

// Format lays out a parsed program at the given width.
func Format(program *ast.Program, width int) string {
	p := NewCodePrinterWithWidth(width)
	p.PrintProgram(program)
	return p.String()
}
