package prompts

import (
	_ "embed"
	"runtime"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/taiact/logs"
	"github.com/reusee/taiact/tools"
)

type Module struct {
	dscope.Module
	Tools tools.Module
}

//go:embed react_system_prompt.txt
var ReActTemplate string

// SystemPrompt is rendered once per run, with the project listing at that time.
type SystemPrompt func() (string, error)

func (Module) SystemPrompt(
	dir tools.ProjectDir,
	registry *tools.Registry,
	logger logs.Logger,
) SystemPrompt {
	return func() (string, error) {
		files, err := ListFiles(string(dir))
		if err != nil {
			return "", err
		}
		logger.Debug("project files",
			"dir", dir,
			"count", len(files),
		)
		return Render(
			ReActTemplate,
			OSName(runtime.GOOS),
			registry.Describe(),
			strings.Join(files, ", "),
		), nil
	}
}
