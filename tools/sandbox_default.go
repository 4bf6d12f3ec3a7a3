//go:build !linux

package tools

import "github.com/reusee/taiact/logs"

func applySandbox(dir string, logger logs.Logger) error {
	logger.Warn("filesystem sandbox is only available on linux")
	return nil
}
