package tools

import (
	"fmt"

	"github.com/reusee/taiact/actions"
)

// StringArg returns args[i] as text, converting numbers, bools and bare tokens.
func StringArg(args []actions.Value, i int, name string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	switch arg := args[i].(type) {
	case string:
		return arg, nil
	case actions.Raw:
		return string(arg), nil
	}
	return actions.FormatValue(args[i]), nil
}
