package evaluator

import "fmt"

type Error struct {
	Message string
	File    string
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("ERROR at %s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("ERROR at %d:%d: %s", e.Line, e.Column, e.Message)
	}
	return "ERROR: " + e.Message
}
