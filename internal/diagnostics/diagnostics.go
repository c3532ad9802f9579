package diagnostics

import (
	"fmt"

	"github.com/funvibe/parfun/internal/token"
)

type ErrorCode string

const (
	// Lexer errors
	ErrL001 ErrorCode = "L001" // illegal character
	ErrL002 ErrorCode = "L002" // unterminated string

	// Parser errors
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // no prefix parse function
	ErrP003 ErrorCode = "P003" // malformed fun expression
	ErrP004 ErrorCode = "P004" // uncallable qualified reference

	// Scan errors
	ErrS001 ErrorCode = "S001" // invalid placeholder usage
)

// DiagnosticError is a positioned, coded diagnostic produced by a
// compilation stage (lexer, parser, placeholder scanner).
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (d *DiagnosticError) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", d.File, d.Line, d.Column, d.Code, d.Message)
	}
	if d.Line > 0 {
		return fmt.Sprintf("%d:%d: [%s] %s", d.Line, d.Column, d.Code, d.Message)
	}
	return fmt.Sprintf("[%s] %s", d.Code, d.Message)
}
