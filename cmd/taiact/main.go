package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/taiact/cmds"
	"github.com/reusee/taiact/generators"
	"github.com/reusee/taiact/logs"
	"github.com/reusee/taiact/modes"
	"github.com/reusee/taiact/react"
	"github.com/reusee/taiact/tools"
)

var projectDir string

func init() {
	cmds.Positional(func(arg string) error {
		if projectDir != "" {
			return fmt.Errorf("unexpected argument: %s", arg)
		}
		projectDir = arg
		return nil
	})
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fail(err)
	}
	if projectDir == "" {
		fmt.Fprintln(os.Stderr, "usage: taiact [flags] [--] <project_directory>")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	dir, err := filepath.Abs(projectDir)
	if err != nil {
		fail(err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		fail(fmt.Errorf("directory %s does not exist", dir))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
		dscope.Provide(tools.ProjectDir(dir)),
	)

	if err := run(ctx, scope); err != nil {
		stop()
		fail(err)
	}
}

func run(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(
		execute react.Execute,
		getGenerator generators.GetDefaultGenerator,
		readLine react.ReadLine,
		logger logs.Logger,
	) {
		var generator generators.Generator
		generator, err = getGenerator()
		if err != nil {
			return
		}

		var goal string
		for goal == "" {
			var input string
			input, err = readLine("Task: ")
			if errors.Is(err, io.EOF) {
				err = errors.New("no task given")
				return
			}
			if err != nil {
				return
			}
			goal = strings.TrimSpace(input)
		}

		var result *react.Result
		result, err = execute(ctx, generator, goal)
		if err != nil {
			return
		}
		logger.Info("done",
			"status", result.Status,
			"steps", result.Steps,
		)
	})
	return
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
