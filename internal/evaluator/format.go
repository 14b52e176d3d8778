package evaluator

import (
	"strconv"
	"strings"
)

const DefaultFloatPrecision = 6

// Printer renders values as display text.
type Printer struct {
	FloatPrecision int
}

var DefaultPrinter = &Printer{FloatPrecision: DefaultFloatPrecision}

var stringEscaper = strings.NewReplacer(
	"\\", `\\`,
	"\"", `\"`,
	"\a", `\a`,
	"\b", `\b`,
	"\f", `\f`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\v", `\v`,
	"\x00", `\0`,
)

// EscapeString quotes s the way the reader expects to read it back.
func EscapeString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

func (p *Printer) Print(v Value) string {
	var sb strings.Builder
	p.write(&sb, v)
	return sb.String()
}

func (p *Printer) write(sb *strings.Builder, v Value) {
	switch val := v.(type) {
	case nil:
		sb.WriteString("()")
	case *Number:
		if val.Kind == FloatKind {
			sb.WriteString(strconv.FormatFloat(val.Float, 'f', p.precision(), 64))
		} else {
			sb.WriteString(strconv.FormatInt(val.Int, 10))
		}
	case *Symbol:
		sb.WriteString(val.Name)
	case *String:
		sb.WriteString(EscapeString(val.Value))
	case *Error:
		sb.WriteString("Error: ")
		sb.WriteString(val.Message)
	case *Builtin:
		sb.WriteString("<builtin>")
	case *Lambda:
		sb.WriteString(`(\ `)
		p.write(sb, val.Formals)
		sb.WriteByte(' ')
		p.write(sb, val.Body)
		sb.WriteByte(')')
	case *Object:
		sb.WriteString("Object: ")
		p.write(sb, val.Slots)
	case *Instance:
		sb.WriteString("Instance: ")
		sb.WriteString(val.Name)
	case *SExpr:
		p.writeCells(sb, val.Cells, '(', ')')
	case *QExpr:
		p.writeCells(sb, val.Cells, '{', '}')
	default:
		sb.WriteString(v.Inspect())
	}
}

func (p *Printer) writeCells(sb *strings.Builder, cells []Value, open, close byte) {
	sb.WriteByte(open)
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		p.write(sb, c)
	}
	sb.WriteByte(close)
}

func (p *Printer) precision() int {
	if p == nil || p.FloatPrecision < 0 {
		return DefaultFloatPrecision
	}
	return p.FloatPrecision
}
