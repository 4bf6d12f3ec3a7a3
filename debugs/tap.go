package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/taiact/cmds"
	"github.com/reusee/taiact/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var tapEval = cmds.Var[string]("-tap-eval")

// Tap blocks in a Starlark REPL on stdin with globals bound, until EOF.
// With -tap-eval it logs the value of that expression instead.
type Tap func(ctx context.Context, what string, globals map[string]any)

var replOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap",
			"what", what,
			"globals", names,
		)
		defer logger.InfoContext(ctx, "tap end",
			"what", what,
		)
		if expr := *tapEval; expr != "" {
			value, err := Eval(expr, globals)
			if err != nil {
				logger.WarnContext(ctx, "tap eval",
					"what", what,
					"expr", expr,
					"error", err,
				)
				return
			}
			logger.InfoContext(ctx, "tap eval",
				"what", what,
				"expr", expr,
				"value", value.String(),
			)
			return
		}
		thread := &starlark.Thread{
			Name: "tap: " + what,
		}
		repl.REPLOptions(replOptions, thread, toStringDict(globals))
	}
}

// Eval evaluates one expression against globals, for scripted inspection.
func Eval(expr string, globals map[string]any) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	return starlark.EvalOptions(replOptions, thread, "<eval>", expr, toStringDict(globals))
}
