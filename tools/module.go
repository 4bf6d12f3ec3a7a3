package tools

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taiact/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// ProjectDir is the absolute directory the tools operate in.
type ProjectDir string
