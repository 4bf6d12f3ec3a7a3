package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taiact/configs"
	"github.com/reusee/taiact/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
