package reader

import (
	"strings"

	"github.com/funvibe/altlisp/internal/ast"
	"github.com/funvibe/altlisp/internal/diagnostics"
	"github.com/funvibe/altlisp/internal/evaluator"
	"github.com/funvibe/altlisp/internal/lexer"
	"github.com/funvibe/altlisp/internal/parser"
	"github.com/funvibe/altlisp/internal/pipeline"
)

// ParseError collects the diagnostics of a failed parse.
type ParseError struct {
	Diagnostics []*diagnostics.DiagnosticError
}

func (e *ParseError) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

func newPipeline() *pipeline.Pipeline {
	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&ReaderProcessor{},
	)
}

func run(source, path string) (*pipeline.PipelineContext, error) {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path
	ctx = newPipeline().Run(ctx)
	if ctx.HasErrors() {
		return nil, &ParseError{Diagnostics: ctx.Errors}
	}
	return ctx, nil
}

// ParseText parses source into a parse tree. path only labels diagnostics.
func ParseText(source, path string) (*ast.Program, error) {
	ctx, err := run(source, path)
	if err != nil {
		return nil, err
	}
	return ctx.AstRoot, nil
}

// ReadString parses source and reads it as one S-expression of its
// top-level forms.
func ReadString(source, path string) (*evaluator.SExpr, error) {
	ctx, err := run(source, path)
	if err != nil {
		return nil, err
	}
	return ctx.Result.(*evaluator.SExpr), nil
}
