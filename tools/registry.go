package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/taiact/actions"
)

type Registry struct {
	tools  []*Tool
	byName map[string]*Tool
}

func NewRegistry(tools ...*Tool) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Tool, len(tools)),
	}
	for _, tool := range tools {
		if tool == nil {
			return nil, fmt.Errorf("%w: nil", ErrBadTool)
		}
		if tool.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrBadTool)
		}
		if tool.Func == nil {
			return nil, fmt.Errorf("%w: %s has no function", ErrBadTool, tool.Name)
		}
		if _, ok := r.byName[tool.Name]; ok {
			return nil, fmt.Errorf("%w: duplicated name %s", ErrBadTool, tool.Name)
		}
		r.byName[tool.Name] = tool
		r.tools = append(r.tools, tool)
	}
	return r, nil
}

func (r *Registry) Get(name string) (*Tool, bool) {
	tool, ok := r.byName[name]
	return tool, ok
}

// Tools returns tools in registration order.
func (r *Registry) Tools() []*Tool {
	return r.tools
}

func (r *Registry) Invoke(ctx context.Context, name string, args []actions.Value) (string, error) {
	tool, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	ret, err := tool.Func(ctx, args)
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", &ToolError{
			Tool: name,
			Err:  err,
		}
	}
	return ret, nil
}

// Describe renders the tool catalog for the system prompt.
func (r *Registry) Describe() string {
	lines := make([]string, 0, len(r.tools))
	for _, tool := range r.tools {
		doc := strings.TrimSpace(tool.Doc)
		if doc == "" {
			doc = "No documentation"
		}
		lines = append(lines, "- "+tool.Signature()+": "+doc)
	}
	return strings.Join(lines, "\n")
}
