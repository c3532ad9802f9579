package pipeline

import (
	"github.com/funvibe/parfun/internal/ast"
	"github.com/funvibe/parfun/internal/diagnostics"
	"github.com/funvibe/parfun/internal/token"
)

// PipelineContext carries one source unit through the compilation stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream *TokenStream
	AstRoot     ast.Node
	Errors      []*diagnostics.DiagnosticError
}

// Processor is one compilation stage.
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

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages.
	}
	return ctx
}

// TokenStream is the lexer output consumed by the parser.
type TokenStream struct {
	tokens []token.Token
	pos    int
}

func NewTokenStream(tokens []token.Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Next returns the next token, or EOF once the stream is exhausted.
func (s *TokenStream) Next() token.Token {
	if s.pos >= len(s.tokens) {
		if len(s.tokens) > 0 {
			return s.tokens[len(s.tokens)-1]
		}
		return token.Token{Type: token.EOF}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}
