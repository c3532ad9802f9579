package modules

import (
	"fmt"

	"github.com/funvibe/parfun/internal/evaluator"
)

func errorf(format string, args ...interface{}) *evaluator.Error {
	return &evaluator.Error{Message: fmt.Sprintf(format, args...)}
}

// argString accepts a String or Atom argument as a Go string.
func argString(obj evaluator.Object) (string, bool) {
	switch o := obj.(type) {
	case *evaluator.String:
		return o.Value, true
	case *evaluator.Atom:
		return o.Value, true
	}
	return "", false
}
