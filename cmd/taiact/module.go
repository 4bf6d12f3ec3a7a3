package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taiact/react"
)

type Module struct {
	dscope.Module
	React react.Module
}
