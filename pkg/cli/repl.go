package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/parfun/internal/evaluator"
)

const (
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func runREPL(eval *evaluator.Evaluator, env *evaluator.Environment, stdout, stderr io.Writer) int {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	colored := interactive && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	prompt := "parfun> "
	if colored {
		prompt = colorGreen + "parfun> " + colorReset
	}

	if interactive {
		fmt.Fprintln(stdout, "parfun repl, try: fun math:sub(10, _)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Fprint(stdout, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, ok := RunSource(line, "<repl>", eval, env, &colorWriter{w: stderr, colored: colored})
		if !ok {
			continue
		}
		if interactive {
			fmt.Fprintln(stdout, result.Inspect())
		}
	}

	return 0
}

// colorWriter tints diagnostic lines red on TTYs.
type colorWriter struct {
	w       io.Writer
	colored bool
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	if !cw.colored {
		return cw.w.Write(p)
	}
	if _, err := fmt.Fprint(cw.w, colorRed, string(p), colorReset); err != nil {
		return 0, err
	}
	return len(p), nil
}
