package parser

import "fmt"

// SyntaxError is any error that aborts a declaration parse. Msg is the
// complete user-facing text minus the common prefix.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

func syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}
