package lexer

import (
	"github.com/funvibe/altlisp/internal/diagnostics"
	"github.com/funvibe/altlisp/internal/pipeline"
	"github.com/funvibe/altlisp/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	stream := NewTokenStream(New(ctx.SourceCode))

	for _, tok := range stream.tokens {
		if tok.Type != token.ILLEGAL {
			continue
		}
		msg, _ := tok.Literal.(string)
		err := diagnostics.NewError(diagnostics.ErrL001, tok, msg)
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
	}

	ctx.TokenStream = stream
	return ctx
}
