package react

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/taiact/actions"
)

// ReadLine prompts on the terminal. Aborted prompts and EOF yield io.EOF.
type ReadLine func(prompt string) (string, error)

func (Module) ReadLine() ReadLine {
	return func(prompt string) (string, error) {
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return "", io.EOF
			}
			return "", err
		}
		return input, nil
	}
}

// Confirm asks whether action may run. Only y or Y approves.
type Confirm func(ctx context.Context, action actions.Action) (bool, error)

func (Module) Confirm(
	readLine ReadLine,
	output *Output,
) Confirm {
	return func(ctx context.Context, action actions.Action) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		output.ConfirmRequest(action)
		input, err := readLine("\n\nContinue? (Y/N) ")
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return strings.EqualFold(strings.TrimSpace(input), "y"), nil
	}
}
