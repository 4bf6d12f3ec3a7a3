package tools

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/taiact/actions"
	"github.com/reusee/taiact/logs"
)

// Builtin lists the tools registered by default, in display order.
type Builtin []*Tool

func (Module) Builtin(
	dir ProjectDir,
	logger logs.Logger,
) Builtin {
	return Builtin{
		ReadFile(dir),
		WriteToFile(dir, logger),
		RunTerminalCommand(dir, logger),
	}
}

func (Module) Registry(
	builtin Builtin,
) *Registry {
	registry, err := NewRegistry(builtin...)
	if err != nil {
		panic(err)
	}
	return registry
}

func resolve(dir ProjectDir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(string(dir), path)
}

func isText(content []byte) bool {
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	// text formats with their own mime type, like PostScript
	return bytes.IndexByte(content, 0) < 0 && utf8.Valid(content)
}

func ReadFile(dir ProjectDir) *Tool {
	return &Tool{
		Name:   "read_file",
		Params: []string{"file_path"},
		Doc:    "Read the content of a text file.",
		Func: func(ctx context.Context, args []actions.Value) (string, error) {
			path, err := StringArg(args, 0, "file_path")
			if err != nil {
				return "", err
			}
			content, err := os.ReadFile(resolve(dir, path))
			if err != nil {
				return "", fmt.Errorf("read file: %w", err)
			}
			if !isText(content) {
				return "", fmt.Errorf("read file: %s is not a text file (%s)", path, mimetype.Detect(content))
			}
			return string(content), nil
		},
	}
}

func WriteToFile(dir ProjectDir, logger logs.Logger) *Tool {
	return &Tool{
		Name:   "write_to_file",
		Params: []string{"file_path", "content"},
		Doc:    "Write content to the file, replacing it if it exists. Parent directories are created.",
		Func: func(ctx context.Context, args []actions.Value) (string, error) {
			path, err := StringArg(args, 0, "file_path")
			if err != nil {
				return "", err
			}
			content, err := StringArg(args, 1, "content")
			if err != nil {
				return "", err
			}
			// models often double-escape newlines
			content = strings.ReplaceAll(content, `\n`, "\n")

			path = resolve(dir, path)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return "", fmt.Errorf("write file: %w", err)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return "", fmt.Errorf("write file: %w", err)
			}
			logger.DebugContext(ctx, "file written",
				"path", path,
				"bytes", len(content),
			)
			return "write succeeded", nil
		},
	}
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "/bin/sh", "-c", command)
}

// RunTerminalCommand reports every outcome as text, only cancellation is an error.
func RunTerminalCommand(dir ProjectDir, logger logs.Logger) *Tool {
	return &Tool{
		Name:                 "run_terminal_command",
		Params:               []string{"command"},
		Doc:                  "Run a shell command in the project directory.",
		RequiresConfirmation: true,
		Func: func(ctx context.Context, args []actions.Value) (string, error) {
			command, err := StringArg(args, 0, "command")
			if err != nil {
				return "", err
			}

			cmd := shellCommand(ctx, command)
			cmd.Dir = string(dir)
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			err = cmd.Run()
			logger.DebugContext(ctx, "command executed",
				"command", command,
				"error", err,
			)

			if err != nil {
				if ctx.Err() != nil {
					return "", ctx.Err()
				}
				return fmt.Sprintf("execution failed: %v\n%s", err, stderr.String()), nil
			}
			if stderr.Len() > 0 {
				ret := "execution succeeded with warnings: " + stderr.String()
				if stdout.Len() > 0 {
					// progress goes to stderr for many tools, keep the real output
					ret += "\noutput: " + stdout.String()
				}
				return ret, nil
			}
			return "execution succeeded: " + stdout.String(), nil
		},
	}
}
