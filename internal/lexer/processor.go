package lexer

import (
	"github.com/funvibe/parfun/internal/diagnostics"
	"github.com/funvibe/parfun/internal/pipeline"
	"github.com/funvibe/parfun/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			code := diagnostics.ErrL001
			msg := "illegal character"
			if s, ok := tok.Literal.(string); ok && s != tok.Lexeme {
				msg = s
			}
			if msg == unterminatedStringMsg {
				code = diagnostics.ErrL002
			}
			err := diagnostics.NewError(code, tok, "%s: %q", msg, tok.Lexeme)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.TokenStream = pipeline.NewTokenStream(tokens)
	return ctx
}
