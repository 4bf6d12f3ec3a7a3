package tools

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrMissingArgument = errors.New("missing argument")
	ErrBadTool         = errors.New("bad tool")
)

// ToolError is a capability failure, reported back to the model as an observation.
type ToolError struct {
	Tool string
	Err  error
}

func (t *ToolError) Error() string {
	return fmt.Sprintf("tool %s: %v", t.Tool, t.Err)
}

func (t *ToolError) Unwrap() error {
	return t.Err
}
