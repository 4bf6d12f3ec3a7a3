package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

func OSName(goos string) string {
	switch goos {
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	}
	return "Unknown"
}

// ListFiles returns absolute paths of the direct entries of dir, sorted by name.
func ListFiles(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	ret := make([]string, 0, len(entries))
	for _, entry := range entries {
		ret = append(ret, filepath.Join(abs, entry.Name()))
	}
	slices.Sort(ret)
	return ret, nil
}

// Render fills the first occurrence of each placeholder.
func Render(template, osName, toolList, fileList string) string {
	template = strings.Replace(template, "${operating_system}", osName, 1)
	template = strings.Replace(template, "${tool_list}", toolList, 1)
	template = strings.Replace(template, "${file_list}", fileList, 1)
	return template
}
