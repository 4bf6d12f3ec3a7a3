package generators

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taiact/configs"
	"github.com/reusee/taiact/debugs"
	"github.com/reusee/taiact/logs"
	"github.com/reusee/taiact/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
