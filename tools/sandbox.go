package tools

import (
	"fmt"

	"github.com/reusee/taiact/cmds"
	"github.com/reusee/taiact/logs"
)

var safeFlag = cmds.Switch("-safe")

// Sandbox restricts filesystem writes to the project directory when -safe is given.
// It is irreversible for the process.
type Sandbox func() error

func (Module) Sandbox(
	dir ProjectDir,
	logger logs.Logger,
) Sandbox {
	return func() error {
		if !*safeFlag {
			return nil
		}
		if err := applySandbox(string(dir), logger); err != nil {
			return fmt.Errorf("apply sandbox: %w", err)
		}
		return nil
	}
}
