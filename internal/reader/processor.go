package reader

import "github.com/funvibe/altlisp/internal/pipeline"

// ReaderProcessor converts the parsed program into a value tree and stores
// it in ctx.Result as an *evaluator.SExpr.
type ReaderProcessor struct{}

func (rp *ReaderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.HasErrors() || ctx.AstRoot == nil {
		return ctx
	}
	ctx.Result = ReadProgram(ctx.AstRoot)
	return ctx
}
