package partial

import (
	"github.com/funvibe/parfun/internal/ast"
	"github.com/funvibe/parfun/internal/pipeline"
)

// ScanProcessor runs placeholder placement validation after parsing.
type ScanProcessor struct{}

func (sp *ScanProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	prog, ok := ctx.AstRoot.(*ast.Program)
	if !ok || prog == nil {
		return ctx
	}

	for _, err := range ScanProgram(prog) {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
