// Package cli implements the parfun command line entry point: script
// execution, inline evaluation and the interactive REPL.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/parfun/internal/config"
	"github.com/funvibe/parfun/internal/evaluator"
	"github.com/funvibe/parfun/internal/lexer"
	"github.com/funvibe/parfun/internal/modules"
	"github.com/funvibe/parfun/internal/parser"
	"github.com/funvibe/parfun/internal/partial"
	"github.com/funvibe/parfun/internal/pipeline"
)

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Run executes the CLI and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parfun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inline := fs.String("e", "", "evaluate an inline expression and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	proj, err := config.LoadProject(".")
	if err != nil {
		fmt.Fprintln(stderr, "parfun:", err)
		return 1
	}

	store, err := modules.OpenCounterStore(proj.CounterDSN)
	if err != nil {
		fmt.Fprintln(stderr, "parfun:", err)
		return 1
	}
	defer store.Close()

	eval := evaluator.New(modules.Default(store, stdout))
	env := evaluator.NewEnvironment()

	if *inline != "" {
		result, ok := RunSource(*inline, "<inline>", eval, env, stderr)
		if !ok {
			return 1
		}
		fmt.Fprintln(stdout, result.Inspect())
		return 0
	}

	if fs.NArg() > 0 {
		path := fs.Arg(0)
		if !isSourceFile(path) {
			fmt.Fprintf(stderr, "parfun: %s is not a source file (expected %s)\n", path, config.SourceFileExt)
			return 1
		}
		resolved, ok := resolveScript(path, proj.Paths)
		if !ok {
			fmt.Fprintf(stderr, "parfun: %s: no such file\n", path)
			return 1
		}
		data, err := os.ReadFile(resolved)
		if err != nil {
			fmt.Fprintln(stderr, "parfun:", err)
			return 1
		}
		if _, ok := RunSource(string(data), resolved, eval, env, stderr); !ok {
			return 1
		}
		return 0
	}

	return runREPL(eval, env, stdout, stderr)
}

// resolveScript tries the path as given, then relative to each project
// search path, returning the first that exists.
func resolveScript(path string, searchPaths []string) (string, bool) {
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// RunSource compiles and evaluates one source unit. Diagnostics and runtime
// errors are written to errOut; ok reports whether evaluation succeeded.
func RunSource(source, file string, eval *evaluator.Evaluator, env *evaluator.Environment, errOut io.Writer) (evaluator.Object, bool) {
	ctx := &pipeline.PipelineContext{SourceCode: source, FilePath: file}

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&partial.ScanProcessor{},
	)
	ctx = p.Run(ctx)

	if len(ctx.Errors) > 0 {
		for _, err := range ctx.Errors {
			fmt.Fprintln(errOut, err.Error())
		}
		return nil, false
	}

	result := eval.Eval(ctx.AstRoot, env)
	if err, ok := result.(*evaluator.Error); ok {
		fmt.Fprintln(errOut, err.Inspect())
		return nil, false
	}
	return result, true
}
