package pipeline

import (
	"github.com/funvibe/altlisp/internal/ast"
	"github.com/funvibe/altlisp/internal/diagnostics"
	"github.com/funvibe/altlisp/internal/token"
)

// TokenStream is a pull-based source of tokens. The lexer provides the
// implementation; the parser consumes it.
type TokenStream interface {
	Next() token.Token
}

// PipelineContext is the state shared between processing stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream TokenStream
	AstRoot     *ast.Program
	Errors      []*diagnostics.DiagnosticError
	// Result holds whatever the final stage produced (the read value tree).
	Result interface{}
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Every stage runs; stages that need a clean
// context check ctx.Errors themselves.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
