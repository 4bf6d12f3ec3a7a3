package tools

import (
	"context"
	"strings"

	"github.com/reusee/taiact/actions"
)

type Func func(ctx context.Context, args []actions.Value) (string, error)

type Tool struct {
	Name string
	// Params is for display, `name=default` forms are allowed
	Params               []string
	Doc                  string
	RequiresConfirmation bool
	Func                 Func
}

// Signature renders `name(p1, p2)` with defaults stripped.
func (t *Tool) Signature() string {
	params := make([]string, 0, len(t.Params))
	for _, param := range t.Params {
		name, _, _ := strings.Cut(param, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		params = append(params, name)
	}
	return t.Name + "(" + strings.Join(params, ", ") + ")"
}
