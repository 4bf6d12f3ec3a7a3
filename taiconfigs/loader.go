package taiconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taiact/configs"
	"github.com/reusee/taiact/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"taiact.cue",
	".taiact.cue",
}

// ConfigPaths lists existing config files under dirs, in the order given.
func ConfigPaths(dirs ...string) (paths []string) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	// working directory, then user config dir, then system wide
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := ConfigPaths(dirs...)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
